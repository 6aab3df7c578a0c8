package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCommand_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewClassifyCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"Aged Brie",
		"Backstage passes to a TAFKAL80ETC concert",
		"Sulfuras, Hand of Ragnaros",
		"aged brie",
		"Conjured Mana Cake",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, `Aged Brie: AgedBrie
Backstage passes to a TAFKAL80ETC concert: BackstagePass
Sulfuras, Hand of Ragnaros: Sulfuras
aged brie: Normal
Conjured Mana Cake: Normal
`, buf.String())
}

func TestClassifyCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewClassifyCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"Sulfuras, Hand of Ragnaros", "Sulfuras"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string           `json:"status"`
		Data   []Classification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []Classification{
		{Name: "Sulfuras, Hand of Ragnaros", Category: "Sulfuras"},
		{Name: "Sulfuras", Category: "Normal"},
	}, resp.Data)
}

func TestClassifyCommand_VerboseNearMiss(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewClassifyCommand(&RootOptions{Format: "text", Verbose: true})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"AGED BRIE"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "AGED BRIE: Normal\n", out.String())
	assert.Contains(t, errOut.String(), `did you mean "Aged Brie" (AgedBrie)?`)
}

func TestClassifyCommand_MissingArgs(t *testing.T) {
	cmd := NewClassifyCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
