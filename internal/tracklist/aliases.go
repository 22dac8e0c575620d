package tracklist

import "github.com/desertthunder/tracklist/internal/models"

const (
	UnknownArtist = "Unknown Artist"
	UnknownTrack  = "Unknown Track"
)

// artistAliases lists the artist column as written by each export locale, in lookup order.
var artistAliases = []models.Alias{
	{Lang: "en", Name: "Artist"},
	{Lang: "de", Name: "Interpret"},
	{Lang: "fr", Name: "Artiste"},
	{Lang: "es", Name: "Artista"},
	{Lang: "it", Name: "Artista"},
	{Lang: "nl", Name: "Artiest"},
	{Lang: "pt", Name: "Artista"},
	{Lang: "sv", Name: "Artist"},
	{Lang: "da", Name: "Kunstner"},
	{Lang: "tr", Name: "Sanatçı"},
	{Lang: "zh-Hans", Name: "艺术家"},
	{Lang: "zh-Hant", Name: "演出者"},
	{Lang: "ko", Name: "아티스트"},
	{Lang: "ja", Name: "アーティスト"},
	{Lang: "ru", Name: "Исполнитель"},
	{Lang: "el", Name: "Καλλιτέχνης"},
	{Lang: "hu", Name: "Előadó"},
	{Lang: "cs", Name: "Interpret"},
}

// titleAliases lists the title column as written by each export locale, in lookup order.
var titleAliases = []models.Alias{
	{Lang: "en", Name: "Track Title"},
	{Lang: "en", Name: "Title"},
	{Lang: "de", Name: "Titel"},
	{Lang: "fr", Name: "Titre"},
	{Lang: "es", Name: "Título"},
	{Lang: "it", Name: "Titolo"},
	{Lang: "nl", Name: "Titel"},
	{Lang: "pt", Name: "Título"},
	{Lang: "sv", Name: "Låttitel"},
	{Lang: "da", Name: "Titel"},
	{Lang: "tr", Name: "Parça Adı"},
	{Lang: "zh-Hans", Name: "曲目标题"},
	{Lang: "zh-Hant", Name: "曲目標題"},
	{Lang: "ko", Name: "트랙 제목"},
	{Lang: "ja", Name: "トラックタイトル"},
	{Lang: "ru", Name: "Название трека"},
	{Lang: "el", Name: "Τίτλος κομματιού"},
	{Lang: "hu", Name: "Cím"},
	{Lang: "cs", Name: "Název skladby"},
}

var fallbacks = map[models.Field]string{
	models.FieldArtist: UnknownArtist,
	models.FieldTitle:  UnknownTrack,
}

func aliasesFor(field models.Field) []models.Alias {
	switch field {
	case models.FieldArtist:
		return artistAliases
	case models.FieldTitle:
		return titleAliases
	default:
		return nil
	}
}

// Aliases returns a copy of the spellings registered for field, in lookup order.
func Aliases(field models.Field) []models.Alias {
	src := aliasesFor(field)
	out := make([]models.Alias, len(src))
	copy(out, src)
	return out
}

// Languages lists every language tag covered by the alias table, in first-seen order.
func Languages() []string {
	seen := map[string]bool{}
	langs := []string{}
	for _, table := range [][]models.Alias{artistAliases, titleAliases} {
		for _, a := range table {
			if !seen[a.Lang] {
				seen[a.Lang] = true
				langs = append(langs, a.Lang)
			}
		}
	}
	return langs
}
