package argspec

import (
	"bytes"
	"testing"

	"github.com/nholm/argspec/parse"
	"github.com/nholm/argspec/types"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"joe -v -t a -t b",
		"--output=file.txt -n 3",
		"-abc x",
		"-5 -1,5",
		"--unknown --unknown=3 -z",
		`"quoted value" -t "another one"`,
		"--héllo=wörld -ü",
		"- -- ---",
		"-t",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		def, err := NewDefinition("fuzz",
			WithArgument("name", NewArgSpec(WithType(types.String), WithArity(types.Optional))),
			WithArgument("rest", NewArgSpec(WithType(types.String), WithArity(types.Array))),
			WithOption("verbose", NewOptSpec(WithOptionType(types.Boolean), WithOptionArity(types.ValueOptional), WithOptionDefault(false), WithFlags("v"))),
			WithOption("count", NewOptSpec(WithOptionType(types.Integer), WithOptionArity(types.ValueOptional), WithOptionDefault(int64(0)), WithFlags("n", "count"))),
			WithOption("tag", NewOptSpec(WithOptionType(types.String), WithOptionArity(types.ValueArray), WithFlags("t"))),
			WithOption("output", NewOptSpec(WithOptionType(types.String), WithOptionArity(types.ValueOptional), WithFlags("o", "output"))))
		if err != nil {
			t.Fatal(err)
		}
		def.SetSink(NewSink(&bytes.Buffer{}, &bytes.Buffer{}))

		args, err := parse.Split(input)
		if err != nil {
			t.Skip()
		}

		result, err := def.Parse(args)
		if err != nil {
			return
		}

		// A successful parse populates every declared field.
		for _, name := range append(def.ArgumentNames(), def.OptionNames()...) {
			if !result.Has(name) {
				t.Errorf("field %q absent after successful parse of %q", name, input)
			}
		}
	})
}
