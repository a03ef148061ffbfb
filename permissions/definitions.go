package permissions

const (
	PermPersonView   = "person.view"
	PermPersonEdit   = "person.edit"
	PermPersonDelete = "person.delete"
	PermPersonExport = "person.export"

	PermCatalogView   = "catalog.view"
	PermCatalogEdit   = "catalog.edit"
	PermCatalogDelete = "catalog.delete"

	PermOrganizationView   = "organization.view"
	PermOrganizationEdit   = "organization.edit"
	PermOrganizationDelete = "organization.delete"

	PermAccountManage = "account.manage"

	PermReportView = "report.view"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// PermissionDefinition describes a single, specific permission
type PermissionDefinition struct {
	Key         string `json:"key"`         // unique key, e.g., "person.edit"
	Name        string `json:"name"`        // friendly name, e.g., "Edit Persons"
	Description string `json:"description"` // detailed description of what the permission allows
}

// PermissionGroupDefinition groups related permissions
type PermissionGroupDefinition struct {
	Key         string                 `json:"key"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Permissions []PermissionDefinition `json:"permissions"`
}

// DefinedPermissionGroups holds all statically defined permission groups and their permissions
var DefinedPermissionGroups = []PermissionGroupDefinition{
	{
		Key:         "person",
		Name:        "Person Management",
		Description: "Permissions related to staff records and their projects, skills and education.",
		Permissions: []PermissionDefinition{
			{Key: PermPersonView, Name: "View Persons", Description: "Allows listing and viewing staff records."},
			{Key: PermPersonEdit, Name: "Edit Persons", Description: "Allows creating and updating staff records, their sub-records and avatars."},
			{Key: PermPersonDelete, Name: "Delete Persons", Description: "Allows deactivating staff records and their sub-records."},
			{Key: PermPersonExport, Name: "Export Persons", Description: "Allows downloading the staff list as a spreadsheet."},
		},
	},
	{
		Key:         "catalog",
		Name:        "Technology Catalog",
		Description: "Permissions related to technologies and their categories.",
		Permissions: []PermissionDefinition{
			{Key: PermCatalogView, Name: "View Catalog", Description: "Allows listing technologies and categories."},
			{Key: PermCatalogEdit, Name: "Edit Catalog", Description: "Allows creating and renaming technologies and categories."},
			{Key: PermCatalogDelete, Name: "Delete Catalog Entries", Description: "Allows deactivating technologies and categories."},
		},
	},
	{
		Key:         "organization",
		Name:        "Organization",
		Description: "Permissions related to groups and office locations.",
		Permissions: []PermissionDefinition{
			{Key: PermOrganizationView, Name: "View Organization", Description: "Allows listing groups and locations."},
			{Key: PermOrganizationEdit, Name: "Edit Organization", Description: "Allows creating and updating groups and locations."},
			{Key: PermOrganizationDelete, Name: "Delete Organization Entries", Description: "Allows deactivating groups and locations."},
		},
	},
	{
		Key:         "account",
		Name:        "Account Management",
		Description: "Permissions related to the accounts that sign in to this backend.",
		Permissions: []PermissionDefinition{
			{Key: PermAccountManage, Name: "Manage Accounts", Description: "Allows listing, creating, editing and deleting accounts."},
		},
	},
	{
		Key:         "report",
		Name:        "Reports",
		Description: "Permissions related to aggregate reports.",
		Permissions: []PermissionDefinition{
			{Key: PermReportView, Name: "View Reports", Description: "Allows viewing headcount and skill reports."},
		},
	},
}

// rolePermissions lists what each role may do. Admin is granted every defined permission in init.
var rolePermissions = map[string][]string{
	RoleViewer: {
		PermPersonView, PermCatalogView, PermOrganizationView, PermReportView,
	},
	RoleEditor: {
		PermPersonView, PermPersonEdit, PermPersonExport,
		PermCatalogView, PermCatalogEdit,
		PermOrganizationView, PermOrganizationEdit,
		PermReportView,
	},
}

var (
	allPermissionKeysMap map[string]PermissionDefinition
	allPermissionKeys    []string
	roleGrants           map[string]map[string]bool
)

func init() {
	allPermissionKeysMap = make(map[string]PermissionDefinition)
	for _, group := range DefinedPermissionGroups {
		for _, perm := range group.Permissions {
			allPermissionKeysMap[perm.Key] = perm
			allPermissionKeys = append(allPermissionKeys, perm.Key)
		}
	}

	rolePermissions[RoleAdmin] = allPermissionKeys
	roleGrants = make(map[string]map[string]bool, len(rolePermissions))
	for role, keys := range rolePermissions {
		grants := make(map[string]bool, len(keys))
		for _, key := range keys {
			grants[key] = true
		}
		roleGrants[role] = grants
	}
}

// GetAllPermissionDefinitions returns a map of all defined permissions, keyed by their unique string key
func GetAllPermissionDefinitions() map[string]PermissionDefinition {
	return allPermissionKeysMap
}

// GetAllPermissionKeys returns a slice of all unique permission string keys
func GetAllPermissionKeys() []string {
	// return a copy to prevent modification of the internal slice
	keys := make([]string, len(allPermissionKeys))
	copy(keys, allPermissionKeys)
	return keys
}

// IsValidPermissionKey checks if a given permission key is defined
func IsValidPermissionKey(key string) bool {
	_, exists := allPermissionKeysMap[key]
	return exists
}

// IsValidRole checks if a role name is known
func IsValidRole(role string) bool {
	_, exists := roleGrants[role]
	return exists
}

// RoleHasPermission reports whether role is granted the permission key
func RoleHasPermission(role, key string) bool {
	return roleGrants[role][key]
}

// PermissionsForRole returns the permission keys granted to role
func PermissionsForRole(role string) []string {
	keys := make([]string, 0, len(roleGrants[role]))
	for _, key := range allPermissionKeys {
		if roleGrants[role][key] {
			keys = append(keys, key)
		}
	}
	return keys
}
