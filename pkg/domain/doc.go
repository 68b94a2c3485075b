// Package domain contains the core domain entities of the shipment service:
// shipments, their deliveries and the container or bulk items a delivery
// carries. These types are free of infrastructure concerns so they can be
// shared by the storage backends, the consistency engine and the API layer.
package domain
