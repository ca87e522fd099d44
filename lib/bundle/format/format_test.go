package format

import (
	"testing"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDecoders maps a decoder name to its factory and an input that decodes to testDictionary
var testDecoders = map[string]struct {
	factory func() IDecoder
	input   string
}{
	"properties": {
		factory: NewPropertiesDecoder,
		input: `# greetings
single_0 = A
single_1 = B
hello_0=good bye
path = ${HOME}/x
`,
	},
	"env": {
		factory: NewEnvDecoder,
		input: `# greetings
single_0=A
single_1="B"
hello_0="good bye"
path='${HOME}/x'
`,
	},
	"yaml": {
		factory: NewYAMLDecoder,
		input: `single_0: A
single_1: B
hello_0: good bye
path: ${HOME}/x
`,
	},
	"json": {
		factory: NewJSONDecoder,
		input:   `{"single_0": "A", "single_1": "B", "hello_0": "good bye", "path": "${HOME}/x"}`,
	},
}

var testDictionary = bundle.Dictionary{
	"single_0": "A",
	"single_1": "B",
	"hello_0":  "good bye",
	"path":     "${HOME}/x",
}

func TestDecode(t *testing.T) {
	for name, tc := range testDecoders {
		t.Run(name, func(t *testing.T) {
			dict, err := tc.factory().Decode([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, testDictionary, dict)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	for name, tc := range testDecoders {
		if name == "json" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			dict, err := tc.factory().Decode(nil)
			require.NoError(t, err)
			assert.Empty(t, dict)
		})
	}
}

func TestPropertiesKeepsCase(t *testing.T) {
	dict, err := NewPropertiesDecoder().Decode([]byte("Key_0=upper\nkey_0=lower\n"))
	require.NoError(t, err)
	assert.Equal(t, "upper", dict["Key_0"])
	assert.Equal(t, "lower", dict["key_0"])
}

func TestStructuredScalars(t *testing.T) {
	dict, err := NewYAMLDecoder().Decode([]byte("n_0: 42\nb_0: true\nz_0: ~\n"))
	require.NoError(t, err)
	assert.Equal(t, bundle.Dictionary{"n_0": "42", "b_0": "true", "z_0": ""}, dict)

	dict, err = NewJSONDecoder().Decode([]byte(`{"f_0": 1.5, "n_0": 3}`))
	require.NoError(t, err)
	assert.Equal(t, bundle.Dictionary{"f_0": "1.5", "n_0": "3"}, dict)
}

func TestStructuredRejectsNesting(t *testing.T) {
	_, err := NewYAMLDecoder().Decode([]byte("a:\n  b: c\n"))
	assert.ErrorIs(t, err, bundle.ErrMalformedResource)

	_, err = NewJSONDecoder().Decode([]byte(`{"a": [1, 2]}`))
	assert.ErrorIs(t, err, bundle.ErrMalformedResource)
}

func TestMalformedInput(t *testing.T) {
	_, err := NewJSONDecoder().Decode([]byte(`{"a":`))
	assert.ErrorIs(t, err, bundle.ErrMalformedResource)

	_, err = NewYAMLDecoder().Decode([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, bundle.ErrMalformedResource)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"properties", "props", "env", "dotenv", "yaml", "yml", "json"} {
		d, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, d.Extension())
	}

	_, err := ByName("xml")
	assert.ErrorIs(t, err, bundle.ErrInvalidArgument)
}
