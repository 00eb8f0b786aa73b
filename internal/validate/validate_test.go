package validate

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
)

func TestQueryParamsAllowList(t *testing.T) {
	q := url.Values{}
	q.Set("ward_no", "7")
	q.Set("sort", "newest")
	if err := QueryParams(q, "ward_no", "status", "problem_type", "sort", "user_id"); err != nil {
		t.Fatalf("expected allowed params to pass: %v", err)
	}

	q.Set("foo", "bar")
	err := QueryParams(q, "ward_no", "status", "problem_type", "sort", "user_id")
	if err == nil {
		t.Fatal("expected unknown param to be rejected")
	}
	msg := err.Error()
	if !strings.Contains(msg, "foo") {
		t.Errorf("error should name the offending param: %q", msg)
	}
	if !strings.Contains(msg, "ward_no, status, problem_type, sort, user_id") {
		t.Errorf("error should enumerate the allowed params: %q", msg)
	}
	if apperr.HTTPStatus(err) != 400 {
		t.Errorf("status = %d, want 400", apperr.HTTPStatus(err))
	}
}

func TestIntakeTextLengthBounds(t *testing.T) {
	// 19 chars fails regardless of content.
	if err := IntakeText(strings.Repeat("a", 19)); err == nil {
		t.Error("19-char text should fail")
	}
	// 20 chars without a location keyword fails.
	if err := IntakeText(strings.Repeat("x", 20)); err == nil {
		t.Error("20-char text without address keyword should fail")
	}
	// 20 chars containing "Road" passes.
	text := "Pothole on Main Road"
	if len(text) != 20 {
		t.Fatalf("fixture length = %d, want 20", len(text))
	}
	if err := IntakeText(text); err != nil {
		t.Errorf("20-char text with keyword should pass: %v", err)
	}
	// Over the max limit fails even with a keyword.
	long := "Near the park " + strings.Repeat("a", MaxDescriptionLength)
	if err := IntakeText(long); err == nil {
		t.Error("over-limit text should fail")
	}
}

func TestIntakeTextCountsCharactersNotBytes(t *testing.T) {
	// 14 characters but 30 bytes; must still fail the 20-character minimum.
	short := "सड़क खराब road"
	if got := len(short); got <= 20 {
		t.Fatalf("fixture byte length = %d, want > 20", got)
	}
	if err := IntakeText(short); err == nil {
		t.Error("multibyte text under 20 characters should fail")
	} else if !strings.Contains(err.Error(), "Currently: 14") {
		t.Errorf("error should report the character count: %q", err.Error())
	}

	// 24 characters with a location keyword; passes.
	ok := "सड़क खराब है main market"
	if err := IntakeText(ok); err != nil {
		t.Errorf("multibyte text over 20 characters should pass: %v", err)
	}

	// A multibyte description at the character limit is not tripped early by
	// its byte length.
	atLimit := "Near the park " + strings.Repeat("क", MaxDescriptionLength-14)
	if utf8.RuneCountInString(atLimit) != MaxDescriptionLength {
		t.Fatalf("fixture rune length = %d, want %d", utf8.RuneCountInString(atLimit), MaxDescriptionLength)
	}
	if err := IntakeText(atLimit); err != nil {
		t.Errorf("text at the character limit should pass: %v", err)
	}
}

func TestIntakeTextKeywordIsCaseInsensitive(t *testing.T) {
	if err := IntakeText("water leaking NEAR my house gate"); err != nil {
		t.Errorf("uppercase keyword should match: %v", err)
	}
}

func TestSubmitterID(t *testing.T) {
	for _, ok := range []string{"citizen_42", "A1", "x"} {
		if err := SubmitterID(ok); err != nil {
			t.Errorf("SubmitterID(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "user name", "user@host", "hyphen-ated"} {
		if err := SubmitterID(bad); err == nil {
			t.Errorf("SubmitterID(%q): expected error", bad)
		}
	}
}

func TestEnumMessageEnumeratesAllowedSet(t *testing.T) {
	err := Enum("status", "Closed", []string{"Pending", "In Progress", "Resolved"})
	if err == nil {
		t.Fatal("expected enum violation")
	}
	if !strings.Contains(err.Error(), "Pending, In Progress, Resolved") {
		t.Errorf("error should enumerate allowed values: %q", err.Error())
	}
	if err := Enum("status", "In Progress", []string{"Pending", "In Progress", "Resolved"}); err != nil {
		t.Errorf("allowed value rejected: %v", err)
	}
}

func TestSort(t *testing.T) {
	if err := Sort("newest"); err != nil {
		t.Errorf("newest: %v", err)
	}
	if err := Sort("oldest"); err != nil {
		t.Errorf("oldest: %v", err)
	}
	if err := Sort("upside-down"); err == nil {
		t.Error("expected invalid sort to fail")
	}
}
