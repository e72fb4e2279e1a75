package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/saradorri/backoffice/internal/domain"
)

// modelText matches request paths with keyMatch2 so policies may use /* and :param
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// DefaultPolicies grants routes per role. agent_manager inherits every viewer grant.
var DefaultPolicies = [][]string{
	{domain.RoleAdmin, "/api/v1/*", "*"},

	{domain.RoleViewer, "/api/v1/games", "GET"},
	{domain.RoleViewer, "/api/v1/commissions", "GET"},
	{domain.RoleViewer, "/api/v1/dashboard/search", "GET"},
	{domain.RoleViewer, "/api/v1/user/change-password", "POST"},

	{domain.RoleAgentManager, "/api/v1/agents", "GET"},
	{domain.RoleAgentManager, "/api/v1/users/players", "GET"},
	{domain.RoleAgentManager, "/api/v1/dashboard/*", "*"},
	{domain.RoleAgentManager, "/api/v1/sub-accounts", "*"},
	{domain.RoleAgentManager, "/api/v1/activity-logs", "GET"},

	{domain.RolePlayer, "/api/v1/user/change-password", "POST"},
}

// DefaultGroupings are role inheritance pairs (member, parent)
var DefaultGroupings = [][]string{
	{domain.RoleAgentManager, domain.RoleViewer},
}

// Enforcer answers whether a role may perform a method on a path
type Enforcer interface {
	Allowed(role, path, method string) (bool, error)
}

// CasbinEnforcer wraps a casbin enforcer built from an in-memory model
type CasbinEnforcer struct {
	enforcer *casbin.Enforcer
}

// NewEnforcer builds an enforcer with the default policies
func NewEnforcer() (*CasbinEnforcer, error) {
	return NewEnforcerWithPolicies(DefaultPolicies, DefaultGroupings)
}

// NewEnforcerWithPolicies builds an enforcer from explicit policies and groupings
func NewEnforcerWithPolicies(policies, groupings [][]string) (*CasbinEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	if len(policies) > 0 {
		if _, err := e.AddPolicies(policies); err != nil {
			return nil, fmt.Errorf("add policies: %w", err)
		}
	}
	if len(groupings) > 0 {
		if _, err := e.AddGroupingPolicies(groupings); err != nil {
			return nil, fmt.Errorf("add groupings: %w", err)
		}
	}

	return &CasbinEnforcer{enforcer: e}, nil
}

// Allowed reports whether role may call method on path
func (c *CasbinEnforcer) Allowed(role, path, method string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return c.enforcer.Enforce(role, path, method)
}
