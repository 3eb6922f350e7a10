// api/model/neo4j/nodes.go
package shop_neo4j

// Node Labels
const (
	// LabelClient represents a client record
	LabelClient = "Client"

	// LabelEmployeeRole represents one row of the employee role table
	LabelEmployeeRole = "EmployeeRole"
)

// Constraint names
const (
	ConstraintClientID    = "unique_client_id"
	ConstraintClientEmail = "unique_client_email"
	ConstraintRoleName    = "unique_employee_role_name"
)

// Neo4j server error code raised when a uniqueness constraint rejects a write
const CodeConstraintValidationFailed = "Neo.ClientError.Schema.ConstraintValidationFailed"
