package generators

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/fashconfigs"
	"github.com/reusee/fash/modes"
)

func TestGeneratorSpecs(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/generators.cue"}, fashconfigs.Schema())
		},
	).Call(func(
		get GetGenerator,
	) {

		foo, err := get("foo")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := foo.(*OpenAI); !ok {
			t.Fatalf("got %T", foo)
		}
		if foo.Args().APIKey != "sk-test" {
			t.Fatalf("got %+v", foo.Args())
		}

		local, err := get("local")
		if err != nil {
			t.Fatal(err)
		}
		args := local.Args()
		if args.BaseURL != ollamaBaseURL {
			t.Fatalf("got %s", args.BaseURL)
		}
		if args.Model != "llama3" {
			t.Fatalf("got %s", args.Model)
		}
		if args.MaxGenerateTokens == nil || *args.MaxGenerateTokens != 1024 {
			t.Fatalf("got %v", args.MaxGenerateTokens)
		}
		if args.Temperature == nil || *args.Temperature != 0.2 {
			t.Fatalf("got %v", args.Temperature)
		}

	})
}

func TestBuiltinGenerators(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		get GetGenerator,
	) {
		for name, model := range map[string]string{
			"flash":        "gemini-2.0-flash",
			"gemini-flash": "gemini-2.0-flash",
			"pro":          "gemini-2.5-pro",
			"ollama:qwen3": "qwen3",
		} {
			g, err := get(name)
			if err != nil {
				t.Fatal(err)
			}
			if g.Args().Model != model {
				t.Fatalf("%s: got %s", name, g.Args().Model)
			}
		}
		if _, err := get("no-such-model"); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestUnknownGeneratorType(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() GetGeneratorSpecs {
			return func() ([]GeneratorSpec, error) {
				return []GeneratorSpec{
					{Name: "bad", Type: "unknown"},
				}, nil
			}
		},
	).Call(func(
		get GetGenerator,
	) {
		if _, err := get("bad"); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestGeneratorSpecsShadowing(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{
				"testdata/override.cue",
				"testdata/generators.cue",
			}, fashconfigs.Schema())
		},
	).Call(func(
		getSpecs GetGeneratorSpecs,
	) {
		specs, err := getSpecs()
		if err != nil {
			t.Fatal(err)
		}
		var names []string
		for _, spec := range specs {
			names = append(names, spec.Name+":"+spec.Type)
		}
		if diff := cmp.Diff([]string{"foo:gemini", "bar:gemini", "local:ollama"}, names); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestGeneratorSpecsDuplicated(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/duplicated.cue"}, fashconfigs.Schema())
		},
	).Call(func(
		getSpecs GetGeneratorSpecs,
	) {
		if _, err := getSpecs(); err == nil {
			t.Fatal("should fail")
		}
	})
}
