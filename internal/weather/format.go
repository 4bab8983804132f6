package weather

import (
	"math"
	"strings"
)

// JoinParams joins the command arguments with single spaces and trims the result.
func JoinParams(params Params) string {
	return strings.TrimSpace(strings.Join(params, " "))
}

// Trunc drops the fractional part of v. Values that do not fit an int render as 0.
func Trunc(v float64) int {
	if math.IsNaN(v) || v >= math.MaxInt || v <= math.MinInt {
		return 0
	}
	return int(v)
}

// HasLocation reports whether resp carries a usable location name.
func HasLocation(resp *Response) bool {
	return resp != nil && resp.Location != nil && resp.Location.Name != nil
}

// Place returns the location name, region and country. It assumes HasLocation(resp).
func Place(resp *Response) (name, region, country string) {
	loc := resp.Location
	return *loc.Name, loc.Region, loc.Country
}

// CurrentOf returns the current block of resp or an empty one.
func CurrentOf(resp *Response) CurrentBlock {
	if resp == nil || resp.Current == nil {
		return CurrentBlock{}
	}
	return *resp.Current
}

// DayOf returns the i-th forecast day of resp or an empty one.
func DayOf(resp *Response, i int) DayBlock {
	if resp == nil || resp.Forecast == nil || i < 0 || i >= len(resp.Forecast.ForecastDay) {
		return DayBlock{}
	}
	if d := resp.Forecast.ForecastDay[i].Day; d != nil {
		return *d
	}
	return DayBlock{}
}

// ConditionText returns c.Text, or "" when c is nil.
func ConditionText(c *ConditionBlock) string {
	if c == nil {
		return ""
	}
	return c.Text
}
