package restapi

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/five82/roster/internal/employee"
)

// recordPayload is the body of create and update requests.
type recordPayload struct {
	Name   string  `json:"name"`
	Salary float64 `json:"salary"`
	Age    int     `json:"age"`
}

func newRecordPayload(r employee.Record) recordPayload {
	return recordPayload{Name: r.Name, Salary: r.Salary, Age: r.Age}
}

// Key aliases tried in order for each record field. The upstream API uses
// the employee_ prefix; mirrors and fixtures often use the short names.
var (
	nameKeys   = []string{"employee_name", "name"}
	salaryKeys = []string{"employee_salary", "salary"}
	ageKeys    = []string{"employee_age", "age"}
)

// decodeRecords reads a list response. The list may be the whole body or
// sit under "data"; numbers may arrive as JSON numbers or numeric strings.
func decodeRecords(body []byte) ([]employee.Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json")
	}
	list := gjson.ParseBytes(body)
	if list.IsObject() {
		list = list.Get("data")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("no record list in response")
	}

	records := make([]employee.Record, 0, len(list.Array()))
	var decodeErr error
	idx := 0
	list.ForEach(func(_, item gjson.Result) bool {
		defer func() { idx++ }()
		if !item.IsObject() {
			decodeErr = fmt.Errorf("record %d: not an object", idx)
			return false
		}
		id := item.Get("id")
		if !id.Exists() {
			decodeErr = fmt.Errorf("record %d: missing id", idx)
			return false
		}
		records = append(records, employee.Record{
			ID:     id.Int(),
			Name:   firstOf(item, nameKeys).String(),
			Salary: firstOf(item, salaryKeys).Float(),
			Age:    int(firstOf(item, ageKeys).Int()),
		})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return records, nil
}

func firstOf(item gjson.Result, keys []string) gjson.Result {
	for _, key := range keys {
		if v := item.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}
