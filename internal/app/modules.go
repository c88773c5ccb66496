package app

// Every plugin module compiled into the binary is listed here. Importing a
// module runs its init function, which registers its descriptor with the
// process registry before main starts.
import (
	_ "github.com/vk/propgrid/modules/age"
	_ "github.com/vk/propgrid/modules/height"
	_ "github.com/vk/propgrid/modules/weight"
)
