package postgres

import (
	"strings"

	"snapcase/internal/domain/repository"
)

// buildFilterSQL translates a domain filter tree into a parameterized SQL
// condition over the products table. Phone model predicates are expressed as
// EXISTS subqueries against product_variants so that a product matches when
// any of its variants fits the requested model.
//
// A nil filter yields an empty condition, meaning "match everything".
func buildFilterSQL(filter repository.ProductFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	switch f := filter.(type) {
	case repository.NameContains:
		return "products.name ILIKE ?", []any{"%" + escapeLike(f.Value) + "%"}

	case repository.CategoryIn:
		if len(f.Values) == 0 {
			// An empty IN list matches nothing.
			return "1 = 0", nil
		}
		values := make([]string, 0, len(f.Values))
		for _, c := range f.Values {
			values = append(values, string(c))
		}
		return "products.category IN ?", []any{values}

	case repository.PhoneModelIn:
		if len(f.Values) == 0 {
			return "1 = 0", nil
		}
		values := make([]string, 0, len(f.Values))
		for _, m := range f.Values {
			values = append(values, string(m))
		}
		return "EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.phone_model IN ?)", []any{values}

	case repository.And:
		return combineFilterSQL(f.Filters, " AND ")

	case repository.Or:
		return combineFilterSQL(f.Filters, " OR ")

	default:
		// Unknown filter nodes match nothing rather than everything, so a
		// programming error cannot widen a result set.
		return "1 = 0", nil
	}
}

// combineFilterSQL joins child conditions with the given operator, wrapping
// the result in parentheses to preserve precedence of nested trees.
func combineFilterSQL(children []repository.ProductFilter, op string) (string, []any) {
	if len(children) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(children))
	var args []any

	for _, child := range children {
		sql, childArgs := buildFilterSQL(child)
		if sql == "" {
			continue
		}
		conditions = append(conditions, sql)
		args = append(args, childArgs...)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	if len(conditions) == 1 {
		return conditions[0], args
	}

	return "(" + strings.Join(conditions, op) + ")", args
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search terms so
// they match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
