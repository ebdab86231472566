package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/d9705996/kysai/internal/model"
	"github.com/tidwall/gjson"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// Fallback lists used when an HSE reply omits a key.
var (
	DefaultNonConformities   = []string{"Analysis completed but no specific text parsed."}
	DefaultCorrectiveActions = []string{"Review image manually."}
)

var (
	errInvalidJSON = errors.New("model reply is not valid JSON")
	errNotObject   = errors.New("model reply is not a JSON object")
)

// StripFence removes a leading "```json" and a trailing "```". Nothing else
// is trimmed, so a fence with another language tag is left in place.
func StripFence(reply string) string {
	reply = strings.TrimPrefix(reply, fenceOpen)
	return strings.TrimSuffix(reply, fenceClose)
}

// ParseEightD decodes an 8D reply into a report document. problem becomes
// problem_description and the d2_problem fallback. Keys that are missing or
// null take their defaults; a key with the wrong type is an error.
func ParseEightD(reply, problem string) (model.ReportData, error) {
	root, err := parseObject(reply)
	if err != nil {
		return model.ReportData{}, err
	}

	data := model.ReportData{ProblemDescription: problem, D2Problem: problem}
	fields := []struct {
		key string
		dst any
	}{
		{"d1_team", &data.D1Team},
		{"d2_problem", &data.D2Problem},
		{"d3_interim_actions", &data.D3InterimActions},
		{"d4_root_causes", &data.D4RootCauses},
		{"d4_occurrence_causes", &data.D4OccurrenceCauses},
		{"d4_escape_causes", &data.D4EscapeCauses},
		{"d4_fishbone", &data.D4Fishbone},
		{"d5_chosen_pca", &data.D5ChosenPCA},
		{"d6_implemented_pca", &data.D6ImplementedPCA},
		{"d7_prevention", &data.D7Prevention},
		{"d8_recognition", &data.D8Recognition},
	}
	for _, f := range fields {
		if err := decodeField(root, f.key, f.dst); err != nil {
			return model.ReportData{}, err
		}
	}
	return data.Normalize(), nil
}

// ParseHSE decodes an HSE reply into its two lists, applying the fallback
// lists for missing or null keys.
func ParseHSE(reply string) (nonConformities, correctiveActions []string, err error) {
	root, err := parseObject(reply)
	if err != nil {
		return nil, nil, err
	}
	if err := decodeField(root, "non_conformities", &nonConformities); err != nil {
		return nil, nil, err
	}
	if err := decodeField(root, "corrective_actions", &correctiveActions); err != nil {
		return nil, nil, err
	}
	if nonConformities == nil {
		nonConformities = append([]string(nil), DefaultNonConformities...)
	}
	if correctiveActions == nil {
		correctiveActions = append([]string(nil), DefaultCorrectiveActions...)
	}
	return nonConformities, correctiveActions, nil
}

func parseObject(reply string) (gjson.Result, error) {
	body := StripFence(reply)
	if !gjson.Valid(body) {
		return gjson.Result{}, errInvalidJSON
	}
	root := gjson.Parse(body)
	if !root.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return root, nil
}

func decodeField(root gjson.Result, key string, dst any) error {
	v := lastValue(root, key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	if err := json.Unmarshal([]byte(v.Raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// lastValue returns the last occurrence of key in the object. Get returns the
// first one, but a repeated key must resolve to its final value.
func lastValue(root gjson.Result, key string) gjson.Result {
	var v gjson.Result
	root.ForEach(func(k, val gjson.Result) bool {
		if k.String() == key {
			v = val
		}
		return true
	})
	return v
}
