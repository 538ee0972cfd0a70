package inline

import (
	"encoding/json"
	"io"

	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/source"
)

type Episode struct {
	// Source is the name of the catalog the episode came from.
	Source string `json:"source"`
	// Episode is the structured episode extracted from the release title.
	Episode *source.Episode `json:"episode"`
}

type Output struct {
	Query    string        `json:"query"`
	Criteria *search.Query `json:"criteria"`
	Result   []*Episode    `json:"result"`
}

func asJson(episodes []*source.Episode, text string, criteria *search.Query) ([]byte, error) {
	var result = make([]*Episode, len(episodes))
	for i, e := range episodes {
		var name string
		if e.Source != nil {
			name = e.Source.Name()
		}

		result[i] = &Episode{
			Source:  name,
			Episode: e,
		}
	}

	return json.Marshal(&Output{
		Query:    text,
		Criteria: criteria,
		Result:   result,
	})
}

func writeJson(out io.Writer, episodes []*source.Episode, criteria *search.Query, options *Options) error {
	data, err := asJson(episodes, options.Query, criteria)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
