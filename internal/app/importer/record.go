package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heartmarshall/goods-search/internal/service/catalog"
)

// Record is one line of the upstream product export (JSON Lines).
// The export is produced by the ERP; ids may arrive as numbers and
// tech_params either as an object or as a JSON-encoded string.
type Record struct {
	ExtID           looseString     `json:"ext_id"`
	Name            string          `json:"name"`
	ComplexName     string          `json:"complex_name"`
	Description     string          `json:"description"`
	BrandName       string          `json:"brand_name"`
	SubgroupName    string          `json:"subgroup_name"`
	GroupName       string          `json:"group_name"`
	TechParams      json.RawMessage `json:"tech_params"`
	ProductManager  *string         `json:"product_manager"`
	BrandManager    *string         `json:"brand_manager"`
	SubgroupManager *string         `json:"subgroup_manager"`
}

// looseString accepts a JSON string or number.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", data)
	}
	*s = looseString(n.String())
	return nil
}

// ToInput converts the record. Unparseable tech params are dropped, the
// second return value reports that.
func (r Record) ToInput() (catalog.SaveProductInput, bool) {
	params, ok := parseTechParams(r.TechParams)
	return catalog.SaveProductInput{
		ExtID:           string(r.ExtID),
		Name:            r.Name,
		ComplexName:     r.ComplexName,
		Description:     r.Description,
		BrandName:       r.BrandName,
		SubgroupName:    r.SubgroupName,
		GroupName:       r.GroupName,
		TechParams:      params,
		ProductManager:  emptyToNil(r.ProductManager),
		BrandManager:    emptyToNil(r.BrandManager),
		SubgroupManager: emptyToNil(r.SubgroupManager),
	}, ok
}

func parseTechParams(raw json.RawMessage) (map[string]string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]string{}, true
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return map[string]string{}, false
		}
		raw = []byte(inner)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return map[string]string{}, false
	}

	params := make(map[string]string, len(obj))
	for k, v := range obj {
		switch val := v.(type) {
		case string:
			params[k] = val
		case json.Number:
			params[k] = val.String()
		case bool:
			params[k] = strconv.FormatBool(val)
		case map[string]any, []any:
			// Nested values are kept as compact JSON.
			if b, err := json.Marshal(val); err == nil {
				params[k] = string(b)
			}
		}
	}
	return params, true
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
