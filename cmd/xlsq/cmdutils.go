package main

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/rgdias/xlsq"
)

// Maximum Levenshtein distance accepted when matching column headers.
const maxHeaderDistance = 3

// promptUser presents a navigable list to be selected on CLI.
func promptUser(list []string, label string) (result string) {
	templates := &promptui.SelectTemplates{
		Help: `{{ "Navigate with these keys:" | faint }} {{ .NextKey | faint }} ` +
			`{{ .PrevKey | faint }} {{ .PageDownKey | faint }} {{ .PageUpKey | faint }} ` +
			`{{ if .Search }} {{ "and" | faint }} {{ .SearchKey | faint }} {{ "toggles search" | faint }}{{ end }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     list,
		Templates: templates,
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	return
}

// findColumn resolves a header name, possibly misspelled, to a column
// index. When want is empty the user picks from the list. Returns -1 when
// nothing matches.
func findColumn(headers []string, want, label string) int {
	if want == "" {
		want = promptUser(headers, label)
	} else if match := xlsq.FuzzyFind(want, headers, maxHeaderDistance); match != "" {
		want = match
	}

	for i, h := range headers {
		if h == want {
			return i
		}
	}
	return -1
}
