package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AtOnline/trayfolder/tray"
)

func TestParseStockIcon(t *testing.T) {
	assert.Equal(t, 3, parseStockIcon("3"))
	assert.Equal(t, 101, parseStockIcon("101"))
	assert.Equal(t, tray.DefaultStockIcon, parseStockIcon("folder"))
	assert.Equal(t, tray.DefaultStockIcon, parseStockIcon("-4"))
	assert.Equal(t, tray.DefaultStockIcon, parseStockIcon(""))
}

func TestRootCommandRejectsExtraArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"C:\\some\\dir", "3", "extra"})

	assert.Error(t, cmd.Execute())
}

func TestRootCommandDescribesArguments(t *testing.T) {
	cmd := newRootCmd()

	assert.Contains(t, cmd.Use, "<folderPath> [iconNumber]")
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
	assert.NotNil(t, cmd.Flags().Lookup("log-file"))
	assert.Contains(t, usage, "SHSTOCKICONID")
}
