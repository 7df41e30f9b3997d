package meteo

import (
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// CurrentValue extracts a single current reading of the given metric.
func (c *Client) CurrentValue(ctx context.Context, endpoint, metric string, params Params) (float64, error) {
	if err := requireParams(params, "latitude", "longitude"); err != nil {
		return 0, err
	}

	merged := params.Merge(Params{Current.Key(): metric})

	body, err := c.fetchJSON(ctx, endpoint, merged)
	if err != nil {
		return 0, err
	}

	return extractCurrent(body, metric)
}

// CurrentSummary extracts current readings for several metrics at once,
// labeled positionally by the caller-supplied display names.
func (c *Client) CurrentSummary(ctx context.Context, endpoint string, metrics, labels []string, params Params) (Bundle, error) {
	if err := requireParams(params, "latitude", "longitude"); err != nil {
		return Bundle{}, err
	}

	merged := params.Merge(Params{Current.Key(): strings.Join(metrics, ",")})

	body, err := c.fetchJSON(ctx, endpoint, merged)
	if err != nil {
		return Bundle{}, err
	}

	return extractBundle(body, metrics, labels)
}

// FetchSeries extracts periodical (hourly or daily) data for one metric,
// coercing values to the requested storage representation.
func FetchSeries[T SeriesValue](ctx context.Context, c *Client, endpoint string, freq Frequency, metric string, params Params) (Series[T], error) {
	if err := requireParams(params, "latitude", "longitude"); err != nil {
		return Series[T]{}, err
	}
	if freq != Hourly && freq != Daily {
		return Series[T]{}, ErrMissingFrequency
	}

	merged := params.Merge(Params{freq.Key(): metric})

	body, err := c.fetchJSON(ctx, endpoint, merged)
	if err != nil {
		return Series[T]{}, err
	}

	return extractSeries[T](body, freq, metric)
}

// FetchTable extracts periodical data for several metrics at once, with
// columns renamed positionally to the caller-supplied display labels.
func (c *Client) FetchTable(ctx context.Context, endpoint string, freq Frequency, metrics, labels []string, params Params) (Table, error) {
	if err := requireParams(params, "latitude", "longitude"); err != nil {
		return Table{}, err
	}
	if freq != Hourly && freq != Daily {
		return Table{}, ErrMissingFrequency
	}

	merged := params.Merge(Params{freq.Key(): strings.Join(metrics, ",")})

	body, err := c.fetchJSON(ctx, endpoint, merged)
	if err != nil {
		return Table{}, err
	}

	return extractTable(body, freq, metrics, labels)
}

func branchOf(body map[string]any, key string) (map[string]any, error) {
	raw, ok := body[key]
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	branch, ok := raw.(map[string]any)
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	return branch, nil
}

func extractCurrent(body map[string]any, metric string) (float64, error) {
	branch, err := branchOf(body, Current.Key())
	if err != nil {
		return 0, err
	}

	raw, ok := branch[metric]
	if !ok {
		return 0, &MissingFieldError{Field: metric}
	}

	value, ok := raw.(float64)
	if !ok {
		return 0, errors.Errorf("metric %q: unexpected value of type %T", metric, raw)
	}

	return value, nil
}

func extractBundle(body map[string]any, metrics, labels []string) (Bundle, error) {
	if len(labels) != len(metrics) {
		return Bundle{}, &ShapeError{Subject: "summary labels", Expected: len(metrics), Got: len(labels)}
	}

	branch, err := branchOf(body, Current.Key())
	if err != nil {
		return Bundle{}, err
	}

	// time and interval are response metadata, not readings.
	delete(branch, "time")
	delete(branch, "interval")

	values := make([]float64, len(metrics))
	for i, metric := range metrics {
		raw, ok := branch[metric]
		if !ok {
			return Bundle{}, &MissingFieldError{Field: metric}
		}
		value, ok := raw.(float64)
		if !ok {
			return Bundle{}, errors.Errorf("metric %q: unexpected value of type %T", metric, raw)
		}
		values[i] = value
	}

	if len(branch) != len(metrics) {
		return Bundle{}, &ShapeError{Subject: "current response fields", Expected: len(metrics), Got: len(branch)}
	}

	return Bundle{
		Labels: append([]string(nil), labels...),
		Values: values,
	}, nil
}

func extractSeries[T SeriesValue](body map[string]any, freq Frequency, metric string) (Series[T], error) {
	branch, err := branchOf(body, freq.Key())
	if err != nil {
		return Series[T]{}, err
	}

	index, err := timeIndex(branch)
	if err != nil {
		return Series[T]{}, err
	}

	raw, ok := branch[metric]
	if !ok {
		return Series[T]{}, &MissingFieldError{Field: metric}
	}
	items, ok := raw.([]any)
	if !ok {
		return Series[T]{}, errors.Errorf("metric %q: expected an array, got %T", metric, raw)
	}
	if len(items) != len(index) {
		return Series[T]{}, &ShapeError{Subject: "metric " + metric, Expected: len(index), Got: len(items)}
	}

	values := make([]T, len(items))
	for i, item := range items {
		value, err := coerce[T](metric, item)
		if err != nil {
			return Series[T]{}, err
		}
		values[i] = value
	}

	return Series[T]{
		IndexName: freq.IndexName(),
		Index:     index,
		Values:    values,
	}, nil
}

func extractTable(body map[string]any, freq Frequency, metrics, labels []string) (Table, error) {
	if len(labels) != len(metrics) {
		return Table{}, &ShapeError{Subject: "summary labels", Expected: len(metrics), Got: len(labels)}
	}

	branch, err := branchOf(body, freq.Key())
	if err != nil {
		return Table{}, err
	}

	index, err := timeIndex(branch)
	if err != nil {
		return Table{}, err
	}

	cells := make([][]float32, len(metrics))
	for i, metric := range metrics {
		raw, ok := branch[metric]
		if !ok {
			return Table{}, &MissingFieldError{Field: metric}
		}
		items, ok := raw.([]any)
		if !ok {
			return Table{}, errors.Errorf("metric %q: expected an array, got %T", metric, raw)
		}
		if len(items) != len(index) {
			return Table{}, &ShapeError{Subject: "metric " + metric, Expected: len(index), Got: len(items)}
		}

		column := make([]float32, len(items))
		for j, item := range items {
			value, err := coerce[float32](metric, item)
			if err != nil {
				return Table{}, err
			}
			column[j] = value
		}
		cells[i] = column
	}

	return Table{
		IndexName: freq.IndexName(),
		Index:     index,
		Columns:   append([]string(nil), labels...),
		Cells:     cells,
	}, nil
}

// timeIndex pops the time array from a periodical branch for use as the
// row index.
func timeIndex(branch map[string]any) ([]string, error) {
	raw, ok := branch["time"]
	if !ok {
		return nil, &MissingFieldError{Field: "time"}
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &MissingFieldError{Field: "time"}
	}
	delete(branch, "time")

	index := make([]string, len(items))
	for i, item := range items {
		timestamp, ok := item.(string)
		if !ok {
			return nil, errors.Errorf("time array: unexpected entry of type %T", item)
		}
		index[i] = timestamp
	}
	return index, nil
}

// coerce converts a decoded JSON value to the requested storage
// representation. JSON nulls map to NaN for floating point targets so
// gaps survive the narrowing; integer and string targets have no gap
// representation, so a null or mistyped value there is an error.
func coerce[T SeriesValue](metric string, raw any) (T, error) {
	var value T
	switch target := any(&value).(type) {
	case *float32:
		*target = float32(numeric(raw))
	case *float64:
		*target = numeric(raw)
	case *int32:
		v, ok := raw.(float64)
		if !ok {
			return value, errors.Errorf("metric %q: expected a number, got %T", metric, raw)
		}
		*target = int32(v)
	case *uint8:
		v, ok := raw.(float64)
		if !ok {
			return value, errors.Errorf("metric %q: expected a number, got %T", metric, raw)
		}
		*target = uint8(v)
	case *string:
		s, ok := raw.(string)
		if !ok {
			return value, errors.Errorf("metric %q: expected a string, got %T", metric, raw)
		}
		*target = s
	}
	return value, nil
}

func numeric(raw any) float64 {
	if value, ok := raw.(float64); ok {
		return value
	}
	return math.NaN()
}
