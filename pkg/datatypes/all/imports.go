// Package all registers every built-in backend.
package all

import (
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/generic"   // generic backend
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/oracle"    // oracle backend
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/redshift"  // redshift backend
	_ "github.com/leapstack-labs/datatypes/pkg/datatypes/snowflake" // snowflake backend
)
