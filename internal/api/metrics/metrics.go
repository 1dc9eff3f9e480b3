// Package metrics defines the custom Prometheus metrics for the approval
// system API. It is the single source of truth for metric names, labels, and
// help strings; collectors register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "approval"

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are not broken down further;
//     the anti-enumeration policy applies to metrics too)
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// AccountsRegisteredTotal counts successful registrations.
// Label:
//   - role: "user", "manager", or "accountant"
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// OrdersCreatedTotal counts newly created orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderStatusTransitionsTotal counts status updates applied by approvers.
// Label:
//   - status: the resulting status ("pending", "approved", "rejected")
var OrderStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_transitions_total",
		Help:      "Total number of order status transitions, by resulting status.",
	},
	[]string{"status"},
)
