package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// SpecFromJson reads a timetable spec from a JSON file. Days may be given as a cycle index or by name (e.g. "TuesdayOdd")
func SpecFromJson(file string) (TimetableSpec, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return TimetableSpec{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return TimetableSpec{}, err
	}
	return SpecFromMap(inputJson)
}

// SpecFromMap decodes and validates a spec held in a generic map
func SpecFromMap(input map[string]any) (TimetableSpec, error) {
	var spec TimetableSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  dayDecodeHook,
		ErrorUnused: true,
		Result:      &spec,
	})
	if err != nil {
		return TimetableSpec{}, err
	}

	if err := decoder.Decode(input); err != nil {
		return TimetableSpec{}, &ConfigurationError{Field: "TimetableSpec", Reason: err.Error()}
	}
	if err := spec.Validate(); err != nil {
		return TimetableSpec{}, err
	}
	return spec, nil
}

func dayDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Day(0)) || from.Kind() != reflect.String {
		return data, nil
	}

	day, err := ParseDay(data.(string))
	if err != nil {
		return nil, fmt.Errorf("cannot decode day: %w", err)
	}
	return day, nil
}
