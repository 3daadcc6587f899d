package appsync

import "time"

// GraphQL/AppSync scalar types with a natural string representation.
// They stay string-backed so values round-trip through JSON untouched;
// none of them validate their contents.
type (
	// ID is the GraphQL ID scalar.
	ID string
	// AWSEmail is an email address, e.g. "user@example.com".
	AWSEmail string
	// AWSPhone is a phone number in E.164-ish form.
	AWSPhone string
	// AWSURL is an absolute URL.
	AWSURL string
	// AWSDate is an extended ISO 8601 date, e.g. "2006-01-02".
	AWSDate string
	// AWSTime is an extended ISO 8601 time, e.g. "15:04:05.000".
	AWSTime string
	// AWSDateTime is an extended ISO 8601 date-time.
	AWSDateTime string
	// AWSJSON is a JSON document serialized as a string.
	AWSJSON string
	// AWSIPAddress is an IPv4 or IPv6 address, optionally with a CIDR
	// suffix.
	AWSIPAddress string
)

// AWSTimestamp is the number of seconds since the Unix epoch.
type AWSTimestamp int64

// Time converts the timestamp to a time.Time in UTC.
func (t AWSTimestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// Timestamp converts a time.Time to an AWSTimestamp, truncating to
// whole seconds.
func Timestamp(t time.Time) AWSTimestamp {
	return AWSTimestamp(t.Unix())
}

// DateTime formats a time.Time as an AWSDateTime.
func DateTime(t time.Time) AWSDateTime {
	return AWSDateTime(t.UTC().Format(time.RFC3339Nano))
}
