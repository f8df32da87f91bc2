// Package directory implements user management on top of the entity
// stores: lookups, updates, the cross-collection cascade on deletion, and
// both halves of the blocking relation.
package directory
