package domain

import "slices"

// Targeting describes who should see an ad set. Field names follow the
// platform's targeting spec so that the value can be forwarded as-is.
type Targeting struct {
	AgeMin       *int          `json:"age_min,omitempty"`
	AgeMax       *int          `json:"age_max,omitempty"`
	Genders      []int         `json:"genders,omitempty"`
	GeoLocations *GeoLocations `json:"geo_locations,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
}

// GeoLocations lists the geographic constraints of a targeting spec.
type GeoLocations struct {
	Countries []string       `json:"countries,omitempty"`
	Regions   []GeoReference `json:"regions,omitempty"`
	Cities    []GeoReference `json:"cities,omitempty"`
}

// GeoReference points at a platform geo entity by key.
type GeoReference struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// Interest is a platform interest entity.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (t *Targeting) clone() *Targeting {
	if t == nil {
		return nil
	}
	out := *t
	if t.AgeMin != nil {
		v := *t.AgeMin
		out.AgeMin = &v
	}
	if t.AgeMax != nil {
		v := *t.AgeMax
		out.AgeMax = &v
	}
	out.Genders = slices.Clone(t.Genders)
	out.Interests = slices.Clone(t.Interests)
	if t.GeoLocations != nil {
		g := GeoLocations{
			Countries: slices.Clone(t.GeoLocations.Countries),
			Regions:   slices.Clone(t.GeoLocations.Regions),
			Cities:    slices.Clone(t.GeoLocations.Cities),
		}
		out.GeoLocations = &g
	}
	return &out
}
