package template

import (
	"github.com/pkg/errors"

	"github.com/mmp/squall/internal"
)

// Product4_0 is Product Definition Template 4.0: analysis or forecast at a
// horizontal level or in a horizontal layer at a point in time.
type Product4_0 struct {
	ParameterCategory            uint8
	ParameterNumber               uint8
	TypeOfGeneratingProcess       uint8
	BackgroundProcess             uint8
	GeneratingProcessIdentifier   uint8
	HoursAfterDataCutoff          uint16
	MinutesAfterDataCutoff        uint8
	IndicatorOfUnitOfTimeRange    uint8
	ForecastTime                  int32
	TypeOfFirstFixedSurface       uint8
	ScaleFactorOfFirstFixedSurface   int8
	ScaledValueOfFirstFixedSurface   uint32
	TypeOfSecondFixedSurface       uint8
	ScaleFactorOfSecondFixedSurface int8
	ScaledValueOfSecondFixedSurface uint32
}

// ReadProduct4_0 parses Product Definition Template 4.0.
func ReadProduct4_0(r *internal.Reader) (*Product4_0, error) {
	var p Product4_0
	var err error

	if p.ParameterCategory, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: parameter category")
	}
	if p.ParameterNumber, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: parameter number")
	}
	if p.TypeOfGeneratingProcess, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: type of generating process")
	}
	if p.BackgroundProcess, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: background process")
	}
	if p.GeneratingProcessIdentifier, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: generating process identifier")
	}
	if p.HoursAfterDataCutoff, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: hours after data cutoff")
	}
	if p.MinutesAfterDataCutoff, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: minutes after data cutoff")
	}
	if p.IndicatorOfUnitOfTimeRange, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: indicator of unit of time range")
	}
	if p.ForecastTime, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: forecast time")
	}
	if p.TypeOfFirstFixedSurface, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: type of first fixed surface")
	}
	sf1, err := r.Int8()
	if err != nil {
		return nil, errors.Wrap(err, "template 4.0: scale factor of first fixed surface")
	}
	p.ScaleFactorOfFirstFixedSurface = sf1
	if p.ScaledValueOfFirstFixedSurface, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: scaled value of first fixed surface")
	}
	if p.TypeOfSecondFixedSurface, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: type of second fixed surface")
	}
	sf2, err := r.Int8()
	if err != nil {
		return nil, errors.Wrap(err, "template 4.0: scale factor of second fixed surface")
	}
	p.ScaleFactorOfSecondFixedSurface = sf2
	if p.ScaledValueOfSecondFixedSurface, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 4.0: scaled value of second fixed surface")
	}
	return &p, nil
}

// Product4_1 is Product Definition Template 4.1: Template 4.0 plus
// ensemble-forecast fields.
type Product4_1 struct {
	Base                         *Product4_0
	TypeOfEnsembleForecast       uint8
	PerturbationNumber           uint8
	NumberOfForecastsInEnsemble  uint8
}

// ReadProduct4_1 parses Product Definition Template 4.1.
func ReadProduct4_1(r *internal.Reader) (*Product4_1, error) {
	base, err := ReadProduct4_0(r)
	if err != nil {
		return nil, err
	}
	var p Product4_1
	p.Base = base
	if p.TypeOfEnsembleForecast, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.1: type of ensemble forecast")
	}
	if p.PerturbationNumber, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.1: perturbation number")
	}
	if p.NumberOfForecastsInEnsemble, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.1: number of forecasts in ensemble")
	}
	return &p, nil
}

// TimeRange is one 12-octet statistical processing specification within a
// TimeInterval.
type TimeRange struct {
	StatisticalProcess                uint8
	TypeOfTimeIncrement               uint8
	IndicatorOfUnitOfTimeRange        uint8
	LengthOfTimeRange                 uint32
	IndicatorOfUnitOfTimeForIncrement uint8
	TimeIncrement                     uint32
}

// ReadTimeRange parses one 12-octet TimeRange record.
func ReadTimeRange(r *internal.Reader) (*TimeRange, error) {
	var tr TimeRange
	var err error
	if tr.StatisticalProcess, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time range: statistical process")
	}
	if tr.TypeOfTimeIncrement, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time range: type of time increment")
	}
	if tr.IndicatorOfUnitOfTimeRange, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time range: indicator of unit of time range")
	}
	if tr.LengthOfTimeRange, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "time range: length of time range")
	}
	if tr.IndicatorOfUnitOfTimeForIncrement, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time range: indicator of unit of time for increment")
	}
	if tr.TimeIncrement, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "time range: time increment")
	}
	return &tr, nil
}

// TimeInterval is the end-of-interval date plus the list of TimeRange
// specifications that describe how the interval's statistic was computed.
// TotalNumberOfDataValuesMissing is read once, before the TimeRange array,
// and belongs to the interval as a whole rather than to any one range.
type TimeInterval struct {
	Year                            uint16
	Month                           uint8
	Day                             uint8
	Hour                            uint8
	Minute                          uint8
	Second                          uint8
	NumberOfTimeRanges              uint8
	TotalNumberOfDataValuesMissing  uint32
	TimeRanges                      []*TimeRange
}

// ReadTimeInterval parses a TimeInterval record.
func ReadTimeInterval(r *internal.Reader) (*TimeInterval, error) {
	var ti TimeInterval
	var err error
	if ti.Year, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "time interval: year")
	}
	if ti.Month, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: month")
	}
	if ti.Day, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: day")
	}
	if ti.Hour, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: hour")
	}
	if ti.Minute, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: minute")
	}
	if ti.Second, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: second")
	}
	if ti.NumberOfTimeRanges, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "time interval: number of time ranges")
	}
	if ti.TotalNumberOfDataValuesMissing, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "time interval: total number of data values missing")
	}
	ti.TimeRanges = make([]*TimeRange, ti.NumberOfTimeRanges)
	for i := range ti.TimeRanges {
		tr, err := ReadTimeRange(r)
		if err != nil {
			return nil, err
		}
		ti.TimeRanges[i] = tr
	}
	return &ti, nil
}

// Product4_8 is Product Definition Template 4.8: Template 4.0 followed by a
// TimeInterval describing the statistical processing performed.
type Product4_8 struct {
	Base     *Product4_0
	Interval *TimeInterval
}

// ReadProduct4_8 parses Product Definition Template 4.8.
func ReadProduct4_8(r *internal.Reader) (*Product4_8, error) {
	base, err := ReadProduct4_0(r)
	if err != nil {
		return nil, err
	}
	interval, err := ReadTimeInterval(r)
	if err != nil {
		return nil, err
	}
	return &Product4_8{Base: base, Interval: interval}, nil
}

// Product4_11 is Product Definition Template 4.11: Template 4.1 followed by
// a TimeInterval.
type Product4_11 struct {
	Base     *Product4_1
	Interval *TimeInterval
}

// ReadProduct4_11 parses Product Definition Template 4.11.
func ReadProduct4_11(r *internal.Reader) (*Product4_11, error) {
	base, err := ReadProduct4_1(r)
	if err != nil {
		return nil, err
	}
	interval, err := ReadTimeInterval(r)
	if err != nil {
		return nil, err
	}
	return &Product4_11{Base: base, Interval: interval}, nil
}

// Product4_50000 is the vendor Product Definition Template 4.50000:
// Template 4.0 plus a two-base-product difference descriptor.
type Product4_50000 struct {
	Base               *Product4_0
	BaseProduct1       uint8
	HourDifference1    uint16
	MinuteDifference1  uint8
	BaseProduct2       uint8
	HourDifference2    uint16
	MinuteDifference2  uint8
}

// ReadProduct4_50000 parses Product Definition Template 4.50000.
func ReadProduct4_50000(r *internal.Reader) (*Product4_50000, error) {
	base, err := ReadProduct4_0(r)
	if err != nil {
		return nil, err
	}
	var p Product4_50000
	p.Base = base
	if p.BaseProduct1, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: base product 1")
	}
	if p.HourDifference1, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: hour difference 1")
	}
	if p.MinuteDifference1, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: minute difference 1")
	}
	if p.BaseProduct2, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: base product 2")
	}
	if p.HourDifference2, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: hour difference 2")
	}
	if p.MinuteDifference2, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50000: minute difference 2")
	}
	return &p, nil
}

// Product4_50011 is the vendor Product Definition Template 4.50011 (radar):
// Template 4.8 plus three 8-octet radar operating info blobs.
type Product4_50011 struct {
	Base               *Product4_8
	RadarOperatingInfo1 uint64
	RadarOperatingInfo2 uint64
	RadarOperatingInfo3 uint64
}

// ReadProduct4_50011 parses Product Definition Template 4.50011.
func ReadProduct4_50011(r *internal.Reader) (*Product4_50011, error) {
	base, err := ReadProduct4_8(r)
	if err != nil {
		return nil, err
	}
	var p Product4_50011
	p.Base = base
	if p.RadarOperatingInfo1, err = r.Uint64(); err != nil {
		return nil, errors.Wrap(err, "template 4.50011: radar operating info 1")
	}
	if p.RadarOperatingInfo2, err = r.Uint64(); err != nil {
		return nil, errors.Wrap(err, "template 4.50011: radar operating info 2")
	}
	if p.RadarOperatingInfo3, err = r.Uint64(); err != nil {
		return nil, errors.Wrap(err, "template 4.50011: radar operating info 3")
	}
	return &p, nil
}

// Product4_50031 is the vendor Product Definition Template 4.50031
// (tropical cyclone track). Unlike the other vendor templates it does not
// contain a Template 4.0 prefix; its parameter and surface fields are laid
// out independently.
type Product4_50031 struct {
	ParameterCategory                uint8
	ParameterNumber                  uint8
	TypeOfGeneratingProcess          uint8
	BackgroundProcess                uint8
	GeneratingProcessIdentifier      uint8
	TCNumber                         uint16
	TyphoonNumber                    uint16
	IndicatorOfUnitOfTimeRangeStart  uint8
	StartTime                        int32
	IndicatorOfUnitOfTimeRangeForecast uint8
	ForecastTime                     int32
	TypeOfFirstFixedSurface          uint8
	ScaleFactorOfFirstFixedSurface   int8
	ScaledValueOfFirstFixedSurface   uint32
	TypeOfSecondFixedSurface         uint8
	ScaleFactorOfSecondFixedSurface  int8
	ScaledValueOfSecondFixedSurface  uint32
}

// ReadProduct4_50031 parses Product Definition Template 4.50031.
func ReadProduct4_50031(r *internal.Reader) (*Product4_50031, error) {
	var p Product4_50031
	var err error

	if p.ParameterCategory, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: parameter category")
	}
	if p.ParameterNumber, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: parameter number")
	}
	if p.TypeOfGeneratingProcess, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: type of generating process")
	}
	if p.BackgroundProcess, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: background process")
	}
	if p.GeneratingProcessIdentifier, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: generating process identifier")
	}
	if p.TCNumber, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: tc number")
	}
	if p.TyphoonNumber, err = r.Uint16(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: typhoon number")
	}
	if p.IndicatorOfUnitOfTimeRangeStart, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: indicator of unit of time range start")
	}
	if p.StartTime, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: start time")
	}
	if p.IndicatorOfUnitOfTimeRangeForecast, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: indicator of unit of time range forecast")
	}
	if p.ForecastTime, err = r.Int32(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: forecast time")
	}
	if p.TypeOfFirstFixedSurface, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: type of first fixed surface")
	}
	sf1, err := r.Int8()
	if err != nil {
		return nil, errors.Wrap(err, "template 4.50031: scale factor of first fixed surface")
	}
	p.ScaleFactorOfFirstFixedSurface = sf1
	if p.ScaledValueOfFirstFixedSurface, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: scaled value of first fixed surface")
	}
	if p.TypeOfSecondFixedSurface, err = r.Uint8(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: type of second fixed surface")
	}
	sf2, err := r.Int8()
	if err != nil {
		return nil, errors.Wrap(err, "template 4.50031: scale factor of second fixed surface")
	}
	p.ScaleFactorOfSecondFixedSurface = sf2
	if p.ScaledValueOfSecondFixedSurface, err = r.Uint32(); err != nil {
		return nil, errors.Wrap(err, "template 4.50031: scaled value of second fixed surface")
	}
	return &p, nil
}
