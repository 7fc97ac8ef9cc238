package fieldref

import "github.com/csvquery/blazecsv/internal/policy"

// Date is a calendar date with no time component.
type Date struct {
	Year, Month, Day int
}

// DateTime is a calendar date plus a time of day. Second may be 60 to
// tolerate a leap second, per spec §4.3.
type DateTime struct {
	Year, Month, Day       int
	Hour, Minute, Second   int
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func digit2(b []byte) (int, bool) {
	if len(b) != 2 || !isDigit(b[0]) || !isDigit(b[1]) {
		return 0, false
	}
	return int(b[0]-'0')*10 + int(b[1]-'0'), true
}

func digit4(b []byte) (int, bool) {
	if len(b) != 4 {
		return 0, false
	}
	for _, c := range b {
		if !isDigit(c) {
			return 0, false
		}
	}
	return int(b[0]-'0')*1000 + int(b[1]-'0')*100 + int(b[2]-'0')*10 + int(b[3]-'0'), true
}

func validCalendarDate(y, m, d int) bool {
	if m < 1 || m > 12 {
		return false
	}
	if d < 1 {
		return false
	}
	max := daysInMonth[m-1]
	if m == 2 && isLeapYear(y) {
		max = 29
	}
	return d <= max
}

// ParseDate accepts exactly "YYYY-MM-DD" (10 bytes) and validates
// calendar correctness, including leap years.
func ParseDate(b []byte) (Date, policy.ErrorCode) {
	if len(b) != 10 || b[4] != '-' || b[7] != '-' {
		return Date{}, policy.InvalidDate
	}
	y, ok := digit4(b[0:4])
	if !ok {
		return Date{}, policy.InvalidDate
	}
	m, ok := digit2(b[5:7])
	if !ok {
		return Date{}, policy.InvalidDate
	}
	d, ok := digit2(b[8:10])
	if !ok {
		return Date{}, policy.InvalidDate
	}
	if !validCalendarDate(y, m, d) {
		return Date{}, policy.InvalidDate
	}
	return Date{Year: y, Month: m, Day: d}, policy.Ok
}

// ParseDateTime accepts "YYYY-MM-DD<sep>HH:MM:SS" where sep is ' ' or 'T'
// (19 bytes), validating hour in [0,23], minute in [0,59], and second in
// [0,60] (a leap second is tolerated).
func ParseDateTime(b []byte) (DateTime, policy.ErrorCode) {
	if len(b) != 19 || (b[10] != ' ' && b[10] != 'T') || b[13] != ':' || b[16] != ':' {
		return DateTime{}, policy.InvalidDateTime
	}
	date, code := ParseDate(b[0:10])
	if code != policy.Ok {
		return DateTime{}, policy.InvalidDateTime
	}
	hh, ok := digit2(b[11:13])
	if !ok || hh > 23 {
		return DateTime{}, policy.InvalidDateTime
	}
	mm, ok := digit2(b[14:16])
	if !ok || mm > 59 {
		return DateTime{}, policy.InvalidDateTime
	}
	ss, ok := digit2(b[17:19])
	if !ok || ss > 60 {
		return DateTime{}, policy.InvalidDateTime
	}
	return DateTime{
		Year: date.Year, Month: date.Month, Day: date.Day,
		Hour: hh, Minute: mm, Second: ss,
	}, policy.Ok
}
