package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/search"
	"github.com/episan-cli/episan/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type stubSource struct {
	name   string
	titles []string
	err    error
}

func (s *stubSource) Name() string            { return s.name }
func (s *stubSource) ID() string              { return s.name + " stub" }
func (s *stubSource) Options() []source.Option { return nil }

func (s *stubSource) Search(string) ([]*source.Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}

	candidates := make([]*source.Candidate, len(s.titles))
	for i, title := range s.titles {
		candidates[i] = &source.Candidate{
			Title: title,
			Link:  fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return candidates, nil
}

func testQuery() *search.Query {
	q, _ := search.NewBuilder().Build()
	return q
}

func TestRun(t *testing.T) {
	stub := &stubSource{
		name: "stub",
		titles: []string{
			"[Fans] Dark Matter - 04 [720p][mkv]",
			"[Fans] Dark Matter - 03 [1080p][mkv]",
			"The.Expanse.S02E05.1080p-LOL",
		},
	}

	Convey("Given a source with parsable titles", t, func() {
		Convey("When running with JSON output", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:       &buf,
				Sources:   []source.Source{stub},
				Query:     "dark matter",
				Selection: testQuery(),
				Json:      true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "dark matter")
			So(output.Result, ShouldHaveLength, 3)

			Convey("Results come out in canonical order", func() {
				So(output.Result[0].Episode.SeriesName, ShouldEqual, "Dark Matter")
				So(output.Result[0].Episode.Number, ShouldEqual, 3)
				So(output.Result[1].Episode.Number, ShouldEqual, 4)
				So(output.Result[2].Episode.SeriesName, ShouldEqual, "The Expanse")
				So(output.Result[0].Source, ShouldEqual, "stub")
			})
		})

		Convey("When running with plain output", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:       &buf,
				Sources:   []source.Source{stub},
				Query:     "dark matter",
				Selection: testQuery(),
			})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldEqual, "Dark Matter S01E03")
		})

		Convey("When running with links output", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:       &buf,
				Sources:   []source.Source{stub},
				Query:     "dark matter",
				Selection: testQuery(),
				Links:     true,
			})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldStartWith, "https://example.com/")
		})

		Convey("When a series picker narrows the result", func() {
			picker, err := ParseSeriesPicker("exact", "THE EXPANSE")
			So(err, ShouldBeNil)

			var buf bytes.Buffer
			err = Run(&Options{
				Out:          &buf,
				Sources:      []source.Source{stub},
				Query:        "expanse",
				Selection:    testQuery(),
				Json:         true,
				SeriesPicker: mo.Some(picker),
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Episode.SeriesName, ShouldEqual, "The Expanse")
		})

		Convey("When an episodes filter trims the result", func() {
			filter, err := ParseEpisodesFilter("last")
			So(err, ShouldBeNil)

			var buf bytes.Buffer
			err = Run(&Options{
				Out:            &buf,
				Sources:        []source.Source{stub},
				Query:          "dark matter",
				Selection:      testQuery(),
				Json:           true,
				EpisodesFilter: mo.Some(filter),
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Episode.SeriesName, ShouldEqual, "The Expanse")
		})
	})

	Convey("Given sources that all fail", t, func() {
		broken := &stubSource{name: "broken", err: errors.New("unreachable")}

		var buf bytes.Buffer
		err := Run(&Options{
			Out:       &buf,
			Sources:   []source.Source{broken},
			Query:     "anything",
			Selection: testQuery(),
		})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "every source failed")
	})

	Convey("Given one healthy source among failing ones", t, func() {
		broken := &stubSource{name: "broken", err: errors.New("unreachable")}

		var buf bytes.Buffer
		err := Run(&Options{
			Out:       &buf,
			Sources:   []source.Source{broken, stub},
			Query:     "dark matter",
			Selection: testQuery(),
			Json:      true,
		})
		So(err, ShouldBeNil)

		var output Output
		So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
		So(output.Result, ShouldHaveLength, 3)
	})
}

func TestParseSeriesPicker(t *testing.T) {
	names := []string{"Dark Matter", "The Expanse", "Wormhole"}

	Convey("Picker kinds resolve as documented", t, func() {
		first, _ := ParseSeriesPicker("first", "")
		So(first(names), ShouldEqual, "Dark Matter")
		So(first(nil), ShouldEqual, "")

		last, _ := ParseSeriesPicker("last", "")
		So(last(names), ShouldEqual, "Wormhole")

		exact, _ := ParseSeriesPicker("exact", "the expanse")
		So(exact(names), ShouldEqual, "The Expanse")
		So(exact([]string{"Dark Matter"}), ShouldEqual, "")

		index, _ := ParseSeriesPicker("index", "1")
		So(index(names), ShouldEqual, "The Expanse")

		Convey("Out of range indexes clamp to the last entry", func() {
			clamped, _ := ParseSeriesPicker("index", "99")
			So(clamped(names), ShouldEqual, "Wormhole")
		})

		Convey("Unknown kinds are rejected", func() {
			_, err := ParseSeriesPicker("best", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed indexes are rejected", func() {
			_, err := ParseSeriesPicker("index", "one")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseEpisodesFilter(t *testing.T) {
	episodes := lo.Map([]int{1, 2, 3, 4, 5}, func(n int, _ int) *source.Episode {
		return &source.Episode{SeriesName: "Show", Number: n}
	})

	apply := func(description string) []*source.Episode {
		filter, err := ParseEpisodesFilter(description)
		So(err, ShouldBeNil)
		filtered, err := filter(episodes)
		So(err, ShouldBeNil)
		return filtered
	}

	Convey("Filter descriptions resolve as documented", t, func() {
		So(apply("all"), ShouldHaveLength, 5)
		So(apply("first")[0].Number, ShouldEqual, 1)
		So(apply("last")[0].Number, ShouldEqual, 5)

		Convey("Ranges select by position", func() {
			filtered := apply("1-3")
			So(filtered, ShouldHaveLength, 3)
			So(filtered[0].Number, ShouldEqual, 2)
		})

		Convey("Substrings match the display form", func() {
			filtered := apply("@e02@")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].Number, ShouldEqual, 2)
		})

		Convey("Single positions select one episode", func() {
			filtered := apply("4")
			So(filtered, ShouldHaveLength, 1)
			So(filtered[0].Number, ShouldEqual, 5)
		})

		Convey("Out of range positions come back empty", func() {
			So(apply("9"), ShouldHaveLength, 0)
		})

		Convey("Gibberish is rejected", func() {
			_, err := ParseEpisodesFilter("bogus")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWriteJson(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty selection", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, testQuery(), opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
		})
	})
}
