// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package detectors

import (
	// stdlib
	"regexp"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

const (
	emailPattern      = `(?i)\b[a-z0-9!#$%&'*+/=?^_{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\b`
	phonePattern      = `(?:\+\d{1,3}[\s.-]?)?(?:\(\d{3}\)\s?|\b\d{3}[\s.-])?\b\d{3}[\s.-]\d{4}\b`
	urlPattern        = `(?i)\b(?:https?://|www\.)[^\s<>"']*[^\s<>"'.,;:!?)\]]`
	creditCardPattern = `\b(?:4\d{3}|5[1-5]\d{2}|6011|3[47]\d{2})[ -]?\d{4}[ -]?\d{4}[ -]?\d{1,4}\b`
	credentialPattern = `(?i)\b(?:password|passwd|pwd|secret)\s*[:=]\s*(?P<secret>\S+)`
	twitterPattern    = `(?:^|[^\w@/])(?P<handle>@[A-Za-z0-9_]{1,15})\b`
	skypePattern      = `(?i)\bskype(?:\s*(?:name|id|username))?\s*[:=]?\s*(?P<handle>[a-z][a-z0-9_.,\-]{5,31})`
	ssnPattern        = `\b\d{3}[- ]\d{2}[- ]\d{4}\b`
	postalCodePattern = `(?i)\b(?:[A-Z]{1,2}\d[A-Z\d]?|GIR)\s*\d[A-Z]{2}\b`
)

// NewEmailDetector finds email addresses.
func NewEmailDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.Email, filth.Email, regexp.MustCompile(emailPattern), opts...)
}

// NewPhoneDetector finds phone numbers written with separators.
func NewPhoneDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.Phone, filth.Phone, regexp.MustCompile(phonePattern), opts...)
}

// NewURLDetector finds http(s) and www URLs.
func NewURLDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.URL, filth.URL, regexp.MustCompile(urlPattern), opts...)
}

// NewCreditCardDetector finds card numbers that pass the Luhn checksum.
func NewCreditCardDetector(opts ...RegexOption) *RegexDetector {
	opts = append([]RegexOption{WithCheck(luhnCheck)}, opts...)
	return NewRegexDetector(filth.CreditCard, filth.CreditCard, regexp.MustCompile(creditCardPattern), opts...)
}

// NewCredentialDetector finds the secret of "password: ..." style assignments.
func NewCredentialDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.Credential, filth.Credential, regexp.MustCompile(credentialPattern), append([]RegexOption{WithGroup("secret")}, opts...)...)
}

// NewTwitterDetector finds @handles.
func NewTwitterDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.Twitter, filth.Twitter, regexp.MustCompile(twitterPattern), append([]RegexOption{WithGroup("handle")}, opts...)...)
}

// NewSkypeDetector finds user names introduced by the word skype.
func NewSkypeDetector(opts ...RegexOption) *RegexDetector {
	return NewRegexDetector(filth.Skype, filth.Skype, regexp.MustCompile(skypePattern), append([]RegexOption{WithGroup("handle")}, opts...)...)
}

// NewSocialSecurityNumberDetector finds US social security numbers.
func NewSocialSecurityNumberDetector(opts ...RegexOption) *RegexDetector {
	opts = append([]RegexOption{WithSupportedLocales("en_US")}, opts...)
	return NewRegexDetector(filth.SocialSecurityNumber, filth.SocialSecurityNumber, regexp.MustCompile(ssnPattern), opts...)
}

// NewPostalCodeDetector finds British postcodes.
func NewPostalCodeDetector(opts ...RegexOption) *RegexDetector {
	opts = append([]RegexOption{WithSupportedLocales("en_GB")}, opts...)
	return NewRegexDetector(filth.PostalCode, filth.PostalCode, regexp.MustCompile(postalCodePattern), opts...)
}

// luhnCheck validates the digits of a card number.
func luhnCheck(f *filth.Filth) bool {
	sum, digits := 0, 0
	for i := len(f.Text) - 1; i >= 0; i-- {
		c := f.Text[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if digits%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		digits++
	}
	return digits >= 13 && sum%10 == 0
}
