package pets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePetRequest(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"fido","kind":"dog"}`, false},
		{"extra fields ignored", `{"id":999,"name":"sammy","kind":"snake","age":3}`, false},
		{"empty body", ``, true},
		{"malformed", `{"name":`, true},
		{"array", `[{"name":"fido"}]`, true},
		{"string", `"fido"`, true},
		{"null", `null`, true},
		{"wrong type", `{"name":5,"kind":"dog"}`, true},
		{"trailing garbage", `{"name":"x","kind":"y"} garbage`, true},
		{"two objects", `{"name":"x","kind":"y"}{"name":"z","kind":"y"}`, true},
		{"trailing whitespace", "{\"name\":\"x\",\"kind\":\"y\"}\n  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePetRequest(strings.NewReader(tc.body))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPetRequest_Validate(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"kind":"dog"}`, "name"},
		{"null name", `{"name":null,"kind":"dog"}`, "name"},
		{"blank name", `{"name":"  ","kind":"dog"}`, "name"},
		{"missing kind", `{"name":"fido"}`, "kind"},
		{"blank kind and category", `{"name":"fido","kind":"","category":" "}`, "kind"},
		{"ok", `{"name":"fido","kind":"dog"}`, ""},
		{"ok via category", `{"name":"fido","category":"dog"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := DecodePetRequest(strings.NewReader(tc.body))
			require.NoError(t, err)

			err = req.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.field+" is required", verr.Error())
		})
	}
}

func TestPetRequest_Values_KindWinsOverCategory(t *testing.T) {
	req, err := DecodePetRequest(strings.NewReader(`{"name":" fido ","kind":"dog","category":"cat"}`))
	require.NoError(t, err)

	name, kind := req.Values()
	assert.Equal(t, "fido", name)
	assert.Equal(t, "dog", kind)
}
