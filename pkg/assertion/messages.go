package assertion

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// namePlaceholder is replaced with the subject name when a message
// is added to an assertion.
const namePlaceholder = "<name>"

const nameMarker = "\x00name\x00"

// Template holds the two wordings of a check message. Guard is used
// in ordinary messages, Condition for clauses following " when ".
type Template struct {
	Guard     string `yaml:"guard" json:"guard"`
	Condition string `yaml:"condition" json:"condition"`
}

// catalog is the registry of check messages keyed by check name.
// It is safe for concurrent use.
type catalog struct {
	mu        sync.RWMutex
	templates map[string]Template
}

var messages = newCatalog()

func newCatalog() *catalog {
	c := &catalog{templates: make(map[string]Template, len(defaultTemplates))}
	for k, t := range defaultTemplates {
		c.templates[k] = t
	}
	return c
}

// RegisterMessage adds the message for a custom check key. Returns
// an error if the key is already registered; use OverrideMessage to
// replace built-in wording.
func RegisterMessage(key string, t Template) error {
	if err := validTemplate(key, t); err != nil {
		return err
	}

	messages.mu.Lock()
	defer messages.mu.Unlock()

	if _, exists := messages.templates[key]; exists {
		return fmt.Errorf("message already registered: %s", key)
	}
	messages.templates[key] = t
	return nil
}

// OverrideMessage replaces the message for key, registering it if
// it does not exist yet.
func OverrideMessage(key string, t Template) error {
	if err := validTemplate(key, t); err != nil {
		return err
	}

	messages.mu.Lock()
	defer messages.mu.Unlock()

	messages.templates[key] = t
	return nil
}

// overrideAll writes templates only when every one of them is valid.
func overrideAll(templates map[string]Template) error {
	keys := sortedKeys(templates)
	for _, key := range keys {
		if err := validTemplate(key, templates[key]); err != nil {
			return fmt.Errorf("configure message %s: %w", key, err)
		}
	}

	messages.mu.Lock()
	defer messages.mu.Unlock()

	for _, key := range keys {
		messages.templates[key] = templates[key]
	}
	return nil
}

// ResetMessages restores the built-in catalog.
func ResetMessages() {
	fresh := newCatalog()

	messages.mu.Lock()
	defer messages.mu.Unlock()

	messages.templates = fresh.templates
}

// MessageFor returns the template registered for key.
func MessageFor(key string) (Template, bool) {
	messages.mu.RLock()
	defer messages.mu.RUnlock()

	t, ok := messages.templates[key]
	return t, ok
}

// CheckResult builds the reported Result for key from the catalog.
// Custom checks registered with RegisterMessage use it from their
// Extend predicates.
func CheckResult(key string, args ...any) Result {
	t, ok := MessageFor(key)
	if !ok {
		t = Template{Guard: "<name> is invalid (" + key + ")"}
	}

	guard := expand(t.Guard, args)
	condition := guard
	if t.Condition != "" {
		condition = expand(t.Condition, args)
	}
	return Result{Valid: true, Message: guard, Condition: condition}
}

func validTemplate(key string, t Template) error {
	if err := quietString(key, "message key").IsEmptyOrWhitespace().Err(); err != nil {
		return err
	}
	return quietString(t.Guard, key+".guard").IsEmptyOrWhitespace().Err()
}

// expand replaces {i} placeholders with the formatted i-th arg.
// Placeholders without a matching arg are left untouched. <name> is
// swapped for nameMarker first so that arguments are never mistaken
// for the placeholder.
func expand(template string, args []any) string {
	template = strings.ReplaceAll(template, namePlaceholder, nameMarker)
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}

	replacements := make([]string, 0, 2*len(args))
	for i, arg := range args {
		replacements = append(replacements, "{"+strconv.Itoa(i)+"}", formatArg(arg))
	}
	return strings.NewReplacer(replacements...).Replace(template)
}

func formatArg(arg any) string {
	switch v := arg.(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func withName(text, name string) string {
	if strings.Contains(text, nameMarker) {
		return strings.ReplaceAll(text, nameMarker, name)
	}
	return strings.ReplaceAll(text, namePlaceholder, name)
}

var defaultTemplates = map[string]Template{
	// generic
	"is_true":         {"<name> is invalid", "<name> is invalid"},
	"is_false":        {"<name> is invalid", "<name> is invalid"},
	"is_equal_to":     {"<name> must not be equal to {0}", "<name> is equal to {0}"},
	"is_not_equal_to": {"<name> must be equal to {0}", "<name> is not equal to {0}"},
	"is_null":         {"<name> is required", "<name> is null"},
	"is_not_null":     {"<name> must be null", "<name> is not null"},

	// numbers and durations
	"is_zero":                     {"<name> must not be zero", "<name> is zero"},
	"is_not_zero":                 {"<name> must be zero", "<name> is not zero"},
	"is_positive":                 {"<name> must not be positive", "<name> is positive"},
	"is_negative":                 {"<name> must not be negative", "<name> is negative"},
	"is_within":                   {"<name> must not be within {0} and {1}", "<name> is within {0} and {1}"},
	"is_not_within":               {"<name> must be within {0} and {1}", "<name> is not within {0} and {1}"},
	"is_smaller_than":             {"<name> must not be smaller than {0}", "<name> is smaller than {0}"},
	"is_smaller_than_or_equal_to": {"<name> must be greater than {0}", "<name> is smaller than or equal to {0}"},
	"is_greater_than":             {"<name> must not be greater than {0}", "<name> is greater than {0}"},
	"is_greater_than_or_equal_to": {"<name> must be smaller than {0}", "<name> is greater than or equal to {0}"},
	"is_even":                     {"<name> must not be even", "<name> is even"},
	"is_odd":                      {"<name> must not be odd", "<name> is odd"},
	"duration_is_shorter_than":    {"<name> must not be shorter than {0}", "<name> is shorter than {0}"},
	"duration_is_longer_than":     {"<name> must not be longer than {0}", "<name> is longer than {0}"},

	// strings
	"is_empty":                          {"<name> must not be empty", "<name> is empty"},
	"is_not_empty":                      {"<name> must be empty", "<name> is not empty"},
	"is_empty_or_whitespace":            {"<name> must not be empty or whitespace", "<name> is empty or whitespace"},
	"is_shorter_than":                   {"<name> must be at least {0} characters", "<name> is shorter than {0} characters"},
	"is_longer_than":                    {"<name> must not be longer than {0} characters", "<name> is longer than {0} characters"},
	"is_not_length":                     {"<name> must be exactly {0} characters", "<name> is not {0} characters"},
	"string_contains":                   {"<name> must not contain '{0}'", "<name> contains '{0}'"},
	"string_does_not_contain":           {"<name> must contain '{0}'", "<name> does not contain '{0}'"},
	"does_not_start_with":               {"<name> must start with '{0}'", "<name> does not start with '{0}'"},
	"does_not_end_with":                 {"<name> must end with '{0}'", "<name> does not end with '{0}'"},
	"does_not_contain_digit":            {"<name> must contain at least one digit", "<name> does not contain a digit"},
	"does_not_contain_upper_case":       {"<name> must contain at least one upper case character", "<name> does not contain an upper case character"},
	"does_not_contain_lower_case":       {"<name> must contain at least one lower case character", "<name> does not contain a lower case character"},
	"does_not_contain_special_character": {"<name> must contain at least one special character", "<name> does not contain a special character"},
	"match":                             {"<name> must not match '{0}'", "<name> matches '{0}'"},
	"does_not_match":                    {"<name> must match '{0}'", "<name> does not match '{0}'"},
	"is_not_valid_email":                {"<name> must be a valid email address", "<name> is not a valid email address"},
	"is_not_valid_url":                  {"<name> must be a valid URL", "<name> is not a valid URL"},
	"is_not_valid_uuid":                 {"<name> must be a valid UUID", "<name> is not a valid UUID"},
	"is_not_valid_iban":                 {"<name> must be a valid IBAN", "<name> is not a valid IBAN"},
	"is_not_valid_swift":                {"<name> must be a valid SWIFT code", "<name> is not a valid SWIFT code"},
	"is_not_valid_isbn":                 {"<name> must be a valid ISBN", "<name> is not a valid ISBN"},
	"is_not_valid_imo":                  {"<name> must be a valid IMO number", "<name> is not a valid IMO number"},
	"is_not_valid_luhn":                 {"<name> must pass the Luhn checksum", "<name> does not pass the Luhn checksum"},
	"is_not_valid_personal_number":      {"<name> must be a valid personal number", "<name> is not a valid personal number"},
	"is_not_valid_zip_code":             {"<name> must be a valid zip code", "<name> is not a valid zip code"},
	"is_not_valid_phone_number":         {"<name> must be a valid phone number", "<name> is not a valid phone number"},
	"is_not_valid_ssn":                  {"<name> must be a valid social security number", "<name> is not a valid social security number"},

	// bool
	"bool_is_true":  {"<name> must be false", "<name> is true"},
	"bool_is_false": {"<name> must be true", "<name> is false"},

	// time
	"is_before":              {"<name> must not be before {0}", "<name> is before {0}"},
	"is_after":               {"<name> must not be after {0}", "<name> is after {0}"},
	"is_in_the_past":         {"<name> must not be in the past", "<name> is in the past"},
	"is_in_the_future":       {"<name> must not be in the future", "<name> is in the future"},
	"is_same_year_as":        {"<name> must not be the same year as {0}", "<name> is the same year as {0}"},
	"is_not_same_year_as":    {"<name> must be the same year as {0}", "<name> is not the same year as {0}"},
	"is_same_month_as":       {"<name> must not be the same month as {0}", "<name> is the same month as {0}"},
	"is_not_same_month_as":   {"<name> must be the same month as {0}", "<name> is not the same month as {0}"},
	"is_same_day_as":         {"<name> must not be the same day as {0}", "<name> is the same day as {0}"},
	"is_not_same_day_as":     {"<name> must be the same day as {0}", "<name> is not the same day as {0}"},
	"is_same_hour_as":        {"<name> must not be the same hour as {0}", "<name> is the same hour as {0}"},
	"is_not_same_hour_as":    {"<name> must be the same hour as {0}", "<name> is not the same hour as {0}"},
	"is_same_minute_as":      {"<name> must not be the same minute as {0}", "<name> is the same minute as {0}"},
	"is_not_same_minute_as":  {"<name> must be the same minute as {0}", "<name> is not the same minute as {0}"},
	"is_same_second_as":      {"<name> must not be the same second as {0}", "<name> is the same second as {0}"},
	"is_not_same_second_as":  {"<name> must be the same second as {0}", "<name> is not the same second as {0}"},

	// collections and maps
	"contains_less_than":          {"<name> must contain at least {0} items", "<name> contains less than {0} items"},
	"contains_more_than":          {"<name> must not contain more than {0} items", "<name> contains more than {0} items"},
	"contains":                    {"<name> must contain {0}", "<name> does not contain {0}"},
	"collection_does_not_contain": {"<name> must contain {0}", "<name> does not contain {0}"},
	"contains_duplicates":         {"<name> must not contain duplicates", "<name> contains duplicates"},
	"contains_key":                {"<name> must not contain key {0}", "<name> contains key {0}"},
	"does_not_contain_key":        {"<name> must contain key {0}", "<name> does not contain key {0}"},

	// objects
	"is_invalid":                   {"{0}", "{0}"},
	"property_values_match":        {"<name> must not have the same property values as {0}", "<name> has the same property values as {0}"},
	"property_values_do_not_match": {"<name> must have the same property values as {0} (differs in {1})", "<name> differs in {1}"},
}
