package convx

import (
	"strconv"
	"testing"

	"github.com/viant/convx/option"
	"github.com/viant/convx/registry"
	"github.com/viant/convx/xtype"
	"pgregory.net/rapid"
)

func TestProperty_Determinism(t *testing.T) {
	converter := New()
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		first, firstErr := converter.Convert(text, xtype.For[int64]())
		second, secondErr := converter.Convert(text, xtype.For[int64]())
		if (firstErr == nil) != (secondErr == nil) || first != second {
			t.Fatalf("non deterministic conversion of %q: %v/%v vs %v/%v", text, first, firstErr, second, secondErr)
		}
	})
}

func TestProperty_IntegerRoundTrip(t *testing.T) {
	converter := New()
	rapid.Check(t, func(t *rapid.T) {
		number := rapid.Int64().Draw(t, "number")
		text, err := converter.Convert(number, stringType)
		if err != nil {
			t.Fatalf("failed to convert %v: %v", number, err)
		}
		if text != strconv.FormatInt(number, 10) {
			t.Fatalf("expected %v, but had %v", number, text)
		}
		back, err := converter.Convert(text, xtype.For[int64]())
		if err != nil || back != number {
			t.Fatalf("round trip of %v failed: %v %v", number, back, err)
		}
	})
}

func TestProperty_Identity(t *testing.T) {
	converter := New(WithoutCatalog())
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SampledFrom([]interface{}{
			rapid.String().Draw(t, "text"),
			rapid.Int().Draw(t, "int"),
			rapid.Bool().Draw(t, "bool"),
			rapid.Int64().Draw(t, "int64"),
		}).Draw(t, "input")
		actual, err := converter.Convert(input, xtype.Of(input))
		if err != nil {
			t.Fatalf("identity conversion failed: %v", err)
		}
		if actual != input {
			t.Fatalf("expected %v, but had %v", input, actual)
		}
	})
}

// a resolved pair stays resolved and uses the same ancestor after unrelated registrations
func TestProperty_Monotonicity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		converter := New(WithoutCatalog())
		if err := converter.Register(xtype.For[Named](), stringType, describe("named")); err != nil {
			t.Fatal(err)
		}
		key := registry.NewKey(xtype.For[Dog](), stringType)
		if !converter.IsConversionSupported(key.Source, key.Target) {
			t.Fatalf("expected %v to be supported", key)
		}
		targets := []xtype.ID{xtype.For[int](), xtype.For[bool](), xtype.For[float64](), stringType}
		sources := []xtype.ID{xtype.For[Animal](), xtype.For[Puppy](), xtype.For[int](), xtype.Any}
		count := rapid.IntRange(1, 8).Draw(t, "count")
		for i := 0; i < count; i++ {
			source := rapid.SampledFrom(sources).Draw(t, "source")
			target := rapid.SampledFrom(targets).Draw(t, "target")
			_ = converter.Replace(source, target, func(interface{}, registry.Converter, *option.Options) (interface{}, error) {
				return "other", nil
			})
			if !converter.IsConversionSupported(key.Source, key.Target) {
				t.Fatalf("%v became unsupported", key)
			}
			actual, err := converter.Convert(Dog{Animal: Animal{Name: "Rex"}}, stringType)
			if err != nil || actual != "named:Rex" {
				t.Fatalf("expected cached resolution, but had %v %v", actual, err)
			}
		}
	})
}
