package flowtests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaflows/webapp-flow-tests/client"
)

func DoWebInputTests(t *T) {
	t.Run("accepted values are echoed back", func(t *T) {
		values := t.Generator().InputValues()
		c := t.Client()

		resp, err := c.SubmitWebInputs(client.WebInputForm{
			Number:   values.Number,
			Text:     values.Text,
			Password: values.Password,
			Date:     values.Date,
		})
		require.NoError(t, err)
		require.Lessf(t, resp.StatusCode, 400, "inputs page returned status %d", resp.StatusCode)

		assert.Equal(t, values.Number, resp.EchoedValue("output_number"))
		assert.Equal(t, values.Text, resp.EchoedValue("output_text"))
		assert.Equal(t, values.Password, resp.EchoedValue("output_password"))
		assert.Equal(t, values.Date, resp.EchoedValue("output_date"))
	})

	t.Run("non-numeric value is not accepted in the number field", func(t *T) {
		values := t.Generator().InputValues()
		values.Number = "not-a-number"
		c := t.Client()

		resp, err := c.SubmitWebInputs(client.WebInputForm{
			Number:   values.Number,
			Text:     values.Text,
			Password: values.Password,
			Date:     values.Date,
		})
		require.NoError(t, err)
		assert.NotEqualf(t, values.Number, resp.EchoedValue("output_number"),
			"the number field echoed a non-numeric value back")
	})
}
