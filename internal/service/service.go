// Package service is the business layer. Each entity service forwards to its
// repository one call at a time; there is no cross-entity logic.
package service

import (
	"github.com/jmoiron/sqlx"

	"pharmacy/m/internal/store"
)

// Services bundles one service per entity over a shared database handle.
type Services struct {
	Customers     *CustomerService
	Medicines     *MedicineService
	Prescriptions *PrescriptionService
	Orders        *OrderService
	OrderedDrugs  *OrderedDrugService
	Bills         *BillService
	Notifications *NotificationService
	Employees     *EmployeeService
}

// New wires every service to its store repository over db.
func New(db *sqlx.DB) *Services {
	return &Services{
		Customers:     NewCustomerService(store.NewCustomers(db)),
		Medicines:     NewMedicineService(store.NewMedicines(db)),
		Prescriptions: NewPrescriptionService(store.NewPrescriptions(db)),
		Orders:        NewOrderService(store.NewOrders(db)),
		OrderedDrugs:  NewOrderedDrugService(store.NewOrderedDrugs(db)),
		Bills:         NewBillService(store.NewBills(db)),
		Notifications: NewNotificationService(store.NewNotifications(db)),
		Employees:     NewEmployeeService(store.NewEmployees(db)),
	}
}
