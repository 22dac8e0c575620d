package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/tracklist/internal/models"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

var _ list.Item = aliasItem{}

// aliasItem lists the column names recognized for one export language.
type aliasItem struct {
	lang    string
	artists []string
	titles  []string
}

func (i aliasItem) FilterValue() string { return i.lang }
func (i aliasItem) Title() string       { return i.lang }
func (i aliasItem) Description() string {
	return fmt.Sprintf("artist: %s • title: %s", joinOr(i.artists), joinOr(i.titles))
}

func joinOr(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, " / ")
}

// aliasItems groups the resolver's column names by language, in [tracklist.Languages] order.
func aliasItems() []list.Item {
	byLang := map[string]*aliasItem{}
	for _, lang := range tracklist.Languages() {
		byLang[lang] = &aliasItem{lang: lang}
	}

	for _, a := range tracklist.Aliases(models.FieldArtist) {
		if it, ok := byLang[a.Lang]; ok {
			it.artists = append(it.artists, a.Name)
		}
	}
	for _, a := range tracklist.Aliases(models.FieldTitle) {
		if it, ok := byLang[a.Lang]; ok {
			it.titles = append(it.titles, a.Name)
		}
	}

	items := make([]list.Item, 0, len(byLang))
	for _, lang := range tracklist.Languages() {
		items = append(items, *byLang[lang])
	}
	return items
}
