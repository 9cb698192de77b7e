package authz

import "fmt"

// RoleSeed built-in role definition.
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds is the access tier matrix. Anonymous requests may
// browse the catalog and authenticate; customers additionally own
// their cart, orders, favorites, reviews and payments. Row-level
// ownership is enforced in the services, not here.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "anonymous",
			Policies: []Policy{
				{Object: "/health", Action: "GET"},
				{Object: "/token", Action: "POST"},
				{Object: "/token/refresh", Action: "POST"},
				{Object: "/users", Action: "POST"},
				{Object: "/products", Action: "GET"},
				{Object: "/products/:id", Action: "GET"},
				{Object: "/products/:id/reviews", Action: "GET"},
				{Object: "/categories", Action: "GET"},
				{Object: "/categories/:id", Action: "GET"},
				{Object: "/chefs", Action: "GET"},
				{Object: "/chefs/:id", Action: "GET"},
				{Object: "/ads", Action: "GET"},
			},
		},
		{
			Role:     "customer",
			Inherits: []string{"anonymous"},
			Policies: []Policy{
				{Object: "/users/me", Action: "GET"},
				{Object: "/users/me", Action: "PUT"},
				{Object: "/carts/me", Action: "GET"},
				{Object: "/carts/:id/add_item", Action: "POST"},
				{Object: "/carts/:id/remove_item", Action: "POST"},
				{Object: "/carts/:id/clear", Action: "POST"},
				{Object: "/orders", Action: "*"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/orders/:id/cancel", Action: "POST"},
				{Object: "/favorites", Action: "GET"},
				{Object: "/favorites/toggle/:product_id", Action: "POST"},
				{Object: "/payments", Action: "*"},
				{Object: "/payments/:id", Action: "GET"},
				{Object: "/products/:id/reviews", Action: "POST"},
				{Object: "/reviews/:id", Action: "DELETE"},
				{Object: "/products", Action: "*"},
				{Object: "/products/:id", Action: "*"},
				{Object: "/categories", Action: "*"},
				{Object: "/categories/:id", Action: "*"},
				{Object: "/chefs", Action: "*"},
				{Object: "/chefs/:id", Action: "*"},
				{Object: "/ads", Action: "*"},
				{Object: "/ads/:id", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the tier roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			if err := s.AddRoleInheritance(role, parent); err != nil {
				return err
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
