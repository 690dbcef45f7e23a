package infra

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds an in-memory enforcer and loads one policy line per
// "resource:action" capability of every role.
func NewEnforcer(policies map[string][]string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for role, caps := range policies {
		for _, c := range caps {
			obj, act, ok := strings.Cut(c, ":")
			if !ok {
				return nil, fmt.Errorf("invalid capability %q for role %s", c, role)
			}
			if _, err := e.AddPolicy(role, obj, act); err != nil {
				return nil, err
			}
		}
	}

	return e, nil
}
