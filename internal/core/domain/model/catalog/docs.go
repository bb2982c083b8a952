// Package catalog contains the browsing side of the domain: brands, their
// branches, food, categories, and the FoodBrandMapping that ties a food to a
// brand under a category name. Food reaches Brand only through the mapping;
// there is no direct foreign key between them.
package catalog
