package generators

// Content is one transcript entry
type Content struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

func UserContent(text string) Content {
	return Content{
		Role: RoleUser,
		Text: text,
	}
}

func ModelContent(text string) Content {
	return Content{
		Role: RoleModel,
		Text: text,
	}
}
