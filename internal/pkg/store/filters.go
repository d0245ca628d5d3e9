package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

func (s *store) GetProvinces(ctx context.Context) ([]domain.ProvinceCount, error) {
	query := builder().
		Select("province", "COUNT(*) AS total_locations").
		From(tableLocations).
		GroupBy("province")

	var provinces []domain.ProvinceCount
	if err := s.pool.Selectx(ctx, &provinces, query); err != nil {
		return nil, wrapErr(err)
	}

	return provinces, nil
}

func (s *store) GetCities(ctx context.Context) ([]string, error) {
	return s.cities(ctx, builder().Select("DISTINCT city").From(tableLocations))
}

func (s *store) GetCitiesByProvince(ctx context.Context, province string) ([]string, error) {
	query := builder().Select("DISTINCT city").
		From(tableLocations).
		Where(squirrel.Eq{"province": province})

	return s.cities(ctx, query)
}

func (s *store) cities(ctx context.Context, query squirrel.SelectBuilder) ([]string, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err = rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}
