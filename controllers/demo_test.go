package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRoot(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"Hello": "World"}, decodeBody(t, w))
}

func TestReadItem(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/items/5", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(5), body["item_id"])
	assert.Nil(t, body["q"], "absent query serialized as null")
}

func TestReadItem_WithQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/items/5?q=test", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(5), body["item_id"])
	assert.Equal(t, "test", body["q"])
}

func TestReadItem_NonIntegerID(t *testing.T) {
	env := newTestEnv(t)

	for _, id := range []string{"null", "abc"} {
		w := env.request(t, http.MethodGet, "/items/"+id, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "id %q", id)

		body := decodeBody(t, w)
		details, ok := body["detail"].([]interface{})
		require.True(t, ok, "detail list")
		require.Len(t, details, 1)

		detail := details[0].(map[string]interface{})
		assert.Equal(t, "int_parsing", detail["type"])
		assert.Equal(t, id, detail["input"])
	}
}

func TestUpdateItem(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPut, "/items/5", map[string]interface{}{
		"name":  "test",
		"price": 10,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"item_name": "test", "item_id": float64(5)}, decodeBody(t, w))
}

func TestUpdateItem_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body map[string]interface{}
		loc  string
	}{
		{"without price", map[string]interface{}{"name": "test"}, "price"},
		{"without name", map[string]interface{}{"price": 10}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPut, "/items/5", tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			body := decodeBody(t, w)
			details, ok := body["detail"].([]interface{})
			require.True(t, ok, "detail list")
			require.Len(t, details, 1)

			detail := details[0].(map[string]interface{})
			assert.Equal(t, "missing", detail["type"])
			assert.Equal(t, []interface{}{"body", tc.loc}, detail["loc"])
		})
	}
}

func TestUpdateItem_ZeroValuesAccepted(t *testing.T) {
	env := newTestEnv(t)

	// price 0 is present, not missing
	w := env.request(t, http.MethodPut, "/items/5", map[string]interface{}{
		"name":  "",
		"price": 0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
