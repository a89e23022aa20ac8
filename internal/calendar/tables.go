package calendar

import (
	"fmt"
	"time"
)

// MonthInfo describes one month of a calendar. SecondaryName holds the
// Arabic name for Hijri months and is empty for Gregorian months.
type MonthInfo struct {
	Number        int
	Name          string
	SecondaryName string
}

// Weekday numbers days Sunday = 0 through Saturday = 6, the same numbering
// as time.Weekday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayInfo carries the names of a weekday.
type WeekdayInfo struct {
	Weekday       Weekday
	Name          string
	SecondaryName string
}

// Short returns the three-letter abbreviation of the English name.
func (w WeekdayInfo) Short() string {
	if len(w.Name) < 3 {
		return w.Name
	}
	return w.Name[:3]
}

// String returns the English day name.
func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayTable[w].Name
}

// TimeWeekday returns the equivalent time.Weekday.
func (w Weekday) TimeWeekday() time.Weekday { return time.Weekday(w) }

var hijriMonthTable = [12]MonthInfo{
	{1, "Muharram", "محرم"},
	{2, "Safar", "صفر"},
	{3, "Rabi' al-Awwal", "ربيع الأول"},
	{4, "Rabi' al-Thani", "ربيع الثاني"},
	{5, "Jumada al-Awwal", "جمادى الأولى"},
	{6, "Jumada al-Thani", "جمادى الثانية"},
	{7, "Rajab", "رجب"},
	{8, "Sha'ban", "شعبان"},
	{9, "Ramadan", "رمضان"},
	{10, "Shawwal", "شوال"},
	{11, "Dhu al-Qi'dah", "ذو القعدة"},
	{12, "Dhu al-Hijjah", "ذو الحجة"},
}

var gregorianMonthTable = [12]MonthInfo{
	{1, "January", ""},
	{2, "February", ""},
	{3, "March", ""},
	{4, "April", ""},
	{5, "May", ""},
	{6, "June", ""},
	{7, "July", ""},
	{8, "August", ""},
	{9, "September", ""},
	{10, "October", ""},
	{11, "November", ""},
	{12, "December", ""},
}

var weekdayTable = [7]WeekdayInfo{
	{Sunday, "Sunday", "الأحد"},
	{Monday, "Monday", "الاثنين"},
	{Tuesday, "Tuesday", "الثلاثاء"},
	{Wednesday, "Wednesday", "الأربعاء"},
	{Thursday, "Thursday", "الخميس"},
	{Friday, "Friday", "الجمعة"},
	{Saturday, "Saturday", "السبت"},
}

// HijriMonth returns the names of Hijri month m. ok is false when m is
// outside 1..12.
func HijriMonth(m int) (info MonthInfo, ok bool) {
	if m < 1 || m > 12 {
		return MonthInfo{}, false
	}
	return hijriMonthTable[m-1], true
}

// GregorianMonth returns the name of Gregorian month m. ok is false when m
// is outside 1..12.
func GregorianMonth(m int) (info MonthInfo, ok bool) {
	if m < 1 || m > 12 {
		return MonthInfo{}, false
	}
	return gregorianMonthTable[m-1], true
}

// HijriMonths returns a copy of the Hijri month table.
func HijriMonths() [12]MonthInfo { return hijriMonthTable }

// GregorianMonths returns a copy of the Gregorian month table.
func GregorianMonths() [12]MonthInfo { return gregorianMonthTable }

// Weekdays returns a copy of the weekday table, Sunday first.
func Weekdays() [7]WeekdayInfo { return weekdayTable }
