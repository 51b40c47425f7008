package scrub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rtavil/salespipe/pkg/scrub"
)

func TestText_RedactsEmails(t *testing.T) {
	out := scrub.Text("contact me at a@b.com")

	assert.Contains(t, out, scrub.RedactedEmail)
	assert.NotContains(t, out, "a@b.com")
}

func TestText_RedactsPhones(t *testing.T) {
	out := scrub.Text("call 555-123-4567")

	assert.Contains(t, out, scrub.RedactedPhone)
	assert.NotContains(t, out, "555-123-4567")
}

func TestText_LeavesCleanTextAlone(t *testing.T) {
	in := "Acme Corp is a company operating in the Technology vertical."
	assert.Equal(t, in, scrub.Text(in))
}

func TestText_MixedContent(t *testing.T) {
	out := scrub.Text("reach sarah.lee+x@acme.io or +1 555 867 5309 anytime")

	assert.Contains(t, out, scrub.RedactedEmail)
	assert.Contains(t, out, scrub.RedactedPhone)
	assert.Contains(t, out, "anytime")
}
