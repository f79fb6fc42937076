package cmds

// Var defines `name <value>` to set and `name.` to reset the returned value
func Var[T any](name string, desc ...string) *T {
	var value T

	cmd := Func(func(v T) {
		value = v
	})
	if len(desc) > 0 {
		cmd.Desc(desc[0])
	}
	Define(name, cmd)

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines `name` to set and `!name` to clear the returned flag
func Switch(name string, desc ...string) *bool {
	var value bool

	cmd := Func(func() {
		value = true
	})
	if len(desc) > 0 {
		cmd.Desc(desc[0])
	}
	Define(name, cmd)

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
