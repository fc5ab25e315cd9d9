package handlers

import (
	"errors"
	"strconv"
	"strings"
)

const (
	defaultPageLimit   = 10
	maxPageLimit       = 100
	maxSearchLength    = 100
	maxTrendTypeLength = 50
)

type listQueryParams struct {
	Limit   int
	Offset  int
	Search  string
	Pattern string
}

// parseListQueryParams validates limit/offset/search before any storage
// access. Out-of-range values are rejected rather than clamped so a caller
// can't silently get a different page than requested.
func parseListQueryParams(rawLimit, rawOffset, rawSearch string) (listQueryParams, error) {
	limit, err := parseLimit(rawLimit)
	if err != nil {
		return listQueryParams{}, err
	}

	offset, err := parseOffset(rawOffset)
	if err != nil {
		return listQueryParams{}, err
	}

	search := strings.TrimSpace(rawSearch)
	if len(search) > maxSearchLength {
		return listQueryParams{}, errors.New("q must be at most 100 characters")
	}

	pattern := ""
	if search != "" {
		pattern = "%" + strings.ToLower(search) + "%"
	}

	return listQueryParams{
		Limit:   limit,
		Offset:  offset,
		Search:  search,
		Pattern: pattern,
	}, nil
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultPageLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxPageLimit {
		return 0, errors.New("limit must be an integer between 1 and 100")
	}
	return limit, nil
}

func parseOffset(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, errors.New("offset must be a non-negative integer")
	}
	return offset, nil
}

func parseTrendType(raw string) (string, error) {
	trendType := strings.TrimSpace(raw)
	if len(trendType) > maxTrendTypeLength {
		return "", errors.New("trend_type must be at most 50 characters")
	}
	return trendType, nil
}

func parseProductID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("product_id is required")
	}
	productID, err := strconv.Atoi(raw)
	if err != nil || productID < 1 {
		return 0, errors.New("product_id must be a positive integer")
	}
	return productID, nil
}
