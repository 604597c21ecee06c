// SPDX-License-Identifier: MIT
// Package: anneal/annealing
//
// options_map.go — decoding of the untyped option map.
//
// Decoding rules:
//   • Only the seven Key* names are read; every other key is ignored.
//   • Numbers are coerced to float64 (YAML/JSON ints are fine).
//   • A strategy value whose type is not convertible to the expected signature,
//     and a returnBest that is not a bool, are NOT decode errors: the key is
//     remembered as invalid and Validate reports it, so a map can be merged in
//     several passes before it is checked.
//   • A key holding nil (or a nil func) is present but unusable: it is
//     remembered as invalid, like a value of the wrong type.
//   • Other malformed values (e.g. "hot" for temperature) fail with ErrOptionDecode.

package annealing

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// mapOptions mirrors Options with mapstructure tags.
type mapOptions[S any] struct {
	CoolDown             CoolDown                `mapstructure:"coolDown"`
	CoolingRate          *float64                `mapstructure:"coolingRate"`
	EnergyCalculator     EnergyCalculator[S]     `mapstructure:"energyCalculator"`
	ReturnBest           *bool                   `mapstructure:"returnBest"`
	StateChange          StateChange[S]          `mapstructure:"stateChange"`
	Temperature          *float64                `mapstructure:"temperature"`
	TerminationCondition TerminationCondition[S] `mapstructure:"terminationCondition"`
}

// OptionsFromMap decodes an option map into Options.
//
// Strategy values may be given either with the named types of this package
// or as plain func literals of the same signature.
//
// Errors:
//   - ErrOptionDecode — a numeric key holds a value that cannot become a float64.
func OptionsFromMap[S any](m map[string]any) (Options[S], error) {
	var (
		raw     mapOptions[S]
		invalid optionSet
	)

	// Each guarded target type maps to exactly one key.
	guarded := map[reflect.Type]optionSet{
		reflect.TypeOf(CoolDown(nil)):                optCoolDown,
		reflect.TypeOf(EnergyCalculator[S](nil)):     optEnergyCalculator,
		reflect.TypeOf(StateChange[S](nil)):          optStateChange,
		reflect.TypeOf(TerminationCondition[S](nil)): optTerminationCondition,
		reflect.TypeOf((*bool)(nil)):                 optReturnBest,
	}

	for key, bit := range keyBits {
		if v, ok := m[key]; ok && isNil(v) {
			invalid |= bit
		}
	}

	hook := func(from, to reflect.Type, data any) (any, error) {
		key, ok := guarded[to]
		if !ok {
			return data, nil
		}
		if key == optReturnBest {
			if from.Kind() == reflect.Bool {
				return data, nil
			}
			invalid |= key
			return nil, nil
		}
		if from.ConvertibleTo(to) {
			return reflect.ValueOf(data).Convert(to).Interface(), nil
		}
		invalid |= key
		return reflect.Zero(to).Interface(), nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       hook,
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return Options[S]{}, fmt.Errorf("%w: %v", ErrOptionDecode, err)
	}
	if err = dec.Decode(m); err != nil {
		return Options[S]{}, fmt.Errorf("%w: %v", ErrOptionDecode, err)
	}

	return Options[S]{
		CoolDown:             raw.CoolDown,
		CoolingRate:          raw.CoolingRate,
		EnergyCalculator:     raw.EnergyCalculator,
		ReturnBest:           raw.ReturnBest,
		StateChange:          raw.StateChange,
		Temperature:          raw.Temperature,
		TerminationCondition: raw.TerminationCondition,
		invalid:              invalid,
	}, nil
}

// keyBits maps every recognised key to its bit.
var keyBits = map[string]optionSet{
	KeyCoolDown:             optCoolDown,
	KeyCoolingRate:          optCoolingRate,
	KeyEnergyCalculator:     optEnergyCalculator,
	KeyReturnBest:           optReturnBest,
	KeyStateChange:          optStateChange,
	KeyTemperature:          optTemperature,
	KeyTerminationCondition: optTerminationCondition,
}

// isNil reports an untyped nil or a nil func, pointer, map or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
