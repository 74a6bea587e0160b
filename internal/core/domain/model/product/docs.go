// Package product provides the catalog aggregate for the storefront.
//
// A Product is a hemp-derived catalog item with a name, price, and optional
// merchandising attributes (strain type, package size, image URL). The order
// flow only depends on a product's identity and price; everything else is
// display data for the catalog UI.
package product
