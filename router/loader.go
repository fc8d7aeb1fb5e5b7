package router

import (
	"fmt"
	"os"

	"github.com/indigo-web/solo/http/method"
	json "github.com/json-iterator/go"
)

type ruleModel struct {
	Method string `json:"method"`
	Target string `json:"target"`
	Status string `json:"status"`
	Body   string `json:"body"`
}

type tableModel struct {
	Rules    []ruleModel `json:"rules"`
	Fallback *ruleModel  `json:"fallback"`
}

// LoadJSON builds a table out of a JSON document of the form:
//
//	{
//	  "rules": [
//	    {"method": "GET", "target": "/", "status": "HTTP/1.1 200 OK", "body": "hello.html"}
//	  ],
//	  "fallback": {"status": "HTTP/1.1 404 NOT FOUND", "body": "404.html"}
//	}
//
// Rule order in the document is the matching priority order. The fallback
// entry is optional; omitting it keeps the built-in one
func LoadJSON(data []byte) (*Table, error) {
	var model tableModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("router: parsing rules: %w", err)
	}

	table := NewTable()

	for _, rule := range model.Rules {
		m := method.Parse(rule.Method)
		if m == method.Unknown {
			return nil, fmt.Errorf("router: rule for %s: unknown method %q", rule.Target, rule.Method)
		}

		if len(rule.Target) == 0 || rule.Target[0] != '/' {
			return nil, fmt.Errorf("router: rule target must start with a slash, got %q", rule.Target)
		}

		table.Route(m, rule.Target, Descriptor{Status: rule.Status, Body: rule.Body})
	}

	if model.Fallback != nil {
		table.Fallback(Descriptor{Status: model.Fallback.Status, Body: model.Fallback.Body})
	}

	return table, nil
}

// LoadFile is LoadJSON over the contents of a file
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadJSON(data)
}
