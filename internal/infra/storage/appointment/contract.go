package appointment

import "github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx (см. pkg/txmanager)
type DBExecutor = txmanager.Executor
