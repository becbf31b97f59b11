// ABOUTME: Text for the interactive menu loop.
// ABOUTME: Keeps prompts and menu rendering out of the command logic.

package ui

import (
	"fmt"
	"strings"
)

// MenuItem is one numbered entry of the interactive menu.
type MenuItem struct {
	Key   string
	Label string
}

var MenuItems = []MenuItem{
	{"1", "Add"},
	{"2", "Edit"},
	{"3", "Delete"},
	{"4", "Get"},
	{"5", "List"},
	{"6", "Filter by date"},
	{"7", "Exit"},
}

const (
	PromptChoice    = "Enter choice: "
	PromptTitle     = "Enter title: "
	PromptBody      = "Enter body: "
	PromptID        = "Enter id: "
	PromptNewTitle  = "Enter new title (leave empty to skip): "
	PromptNewBody   = "Enter new body (leave empty to skip): "
	PromptStartDate = "Enter start date (YYYY-MM-DD, empty for none): "
	PromptEndDate   = "Enter end date (YYYY-MM-DD, empty for none): "
)

func FormatMenu() string {
	var sb strings.Builder
	sb.WriteString(bold("Select command:") + "\n")
	for _, item := range MenuItems {
		sb.WriteString(fmt.Sprintf("%s. %s\n", item.Key, item.Label))
	}
	return sb.String()
}
