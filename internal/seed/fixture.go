package seed

// defaultFixture is a small demo dataset: three SKUs across two
// warehouses, a single supplier lane, uniform WOS_TARGET policies,
// starting stock of 100 at the base week, a couple of inbound POs and
// eight weeks of demand history per pair.
const defaultFixture = `
products:
  - { sku: SKU001, name: Product A }
  - { sku: SKU002, name: Product B }
  - { sku: SKU003, name: Product C }

warehouses:
  - { code: WH1, name: Main Warehouse }
  - { code: WH2, name: Secondary Warehouse }

suppliers:
  - code: SUP1
    name: Acme Supplier
    lanes: [WH1]

policies:
  - { sku: SKU001, warehouse_code: WH1 }
  - { sku: SKU001, warehouse_code: WH2 }
  - { sku: SKU002, warehouse_code: WH1 }
  - { sku: SKU002, warehouse_code: WH2 }
  - { sku: SKU003, warehouse_code: WH1 }
  - { sku: SKU003, warehouse_code: WH2 }

inventory:
  - { week_offset: 0, sku: SKU001, warehouse_code: WH1, on_hand_qty: "100" }
  - { week_offset: 0, sku: SKU001, warehouse_code: WH2, on_hand_qty: "100" }
  - { week_offset: 0, sku: SKU002, warehouse_code: WH1, on_hand_qty: "100" }
  - { week_offset: 0, sku: SKU002, warehouse_code: WH2, on_hand_qty: "100" }
  - { week_offset: 0, sku: SKU003, warehouse_code: WH1, on_hand_qty: "100" }
  - { week_offset: 0, sku: SKU003, warehouse_code: WH2, on_hand_qty: "100" }

receipts:
  - { week_offset: 1, sku: SKU001, warehouse_code: WH1, qty: "50", source_type: PO }
  - { week_offset: 2, sku: SKU001, warehouse_code: WH1, qty: "50", source_type: PO }
  - { week_offset: 1, sku: SKU002, warehouse_code: WH1, qty: "50", source_type: PO }
  - { week_offset: 2, sku: SKU002, warehouse_code: WH1, qty: "50", source_type: PO }

demand_history:
  weeks: 8
  pairs:
    - { sku: SKU001, warehouse_code: WH1, customer_qty: "20", samples_qty: "2" }
    - { sku: SKU001, warehouse_code: WH2, customer_qty: "20", samples_qty: "2" }
    - { sku: SKU002, warehouse_code: WH1, customer_qty: "20", samples_qty: "2" }
    - { sku: SKU002, warehouse_code: WH2, customer_qty: "20", samples_qty: "2" }
    - { sku: SKU003, warehouse_code: WH1, customer_qty: "20", samples_qty: "2" }
    - { sku: SKU003, warehouse_code: WH2, customer_qty: "20", samples_qty: "2" }
`
