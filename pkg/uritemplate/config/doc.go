/*
Package config loads expander settings and link relation catalogs from
YAML or JSON.

# File Format

	expander:
	  missing: keep          # keep | empty | error
	  encoding: unreserved   # none | unreserved | reserved
	  explode_separator: "/"
	relations:
	  self: "product-query/{id}/culture/{culture}"
	  item: "product/{id*}"

# Loading

	cfg, err := config.FromFile("links.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	exp, err := cfg.NewExpander()

Loaded configuration is validated: unknown missing or encoding names and
empty relation templates fail with ErrInvalidConfig. Template syntax is
checked later, when the relations are registered in a link catalog.
*/
package config
