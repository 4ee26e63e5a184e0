package rota

import (
	"regexp"

	"github.com/google/jsonschema-go/jsonschema"
)

// Dataset schemas are derived from the document types so the wire contract
// and the Go structs cannot drift apart.
var (
	scheduleSchema  = mustSchema[ScheduleDocument]()
	residentsSchema = mustSchema[ResidentsDocument]()
)

func mustSchema[T any]() *jsonschema.Resolved {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return resolved
}

// timeRangePattern mirrors what the timeline parser accepts. Kept here so
// the loader can count rejects without depending on the engine package.
var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2})(am|pm)\s+to\s+(\d{1,2})(am|pm)`)

func timeStringParses(s string) bool {
	return s == "All Day" || timeRangePattern.MatchString(s)
}
