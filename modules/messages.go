package modules

// Request and response messages of the modules service.

type GetModulesRequest struct{}

type GetModulesResponse struct {
	Module []string
}

type GetVersionsRequest struct {
	Module string
}

type GetVersionsResponse struct {
	Version []string
}

type GetDefaultVersionRequest struct {
	Module string
}

type GetDefaultVersionResponse struct {
	Version string
}

type GetNumInstancesRequest struct {
	Module  string
	Version string
}

type GetNumInstancesResponse struct {
	Instances int64
}

type SetNumInstancesRequest struct {
	Module    string
	Version   string
	Instances int64
}

type SetNumInstancesResponse struct{}

type StartModuleRequest struct {
	Module  string
	Version string
}

type StartModuleResponse struct{}

type StopModuleRequest struct {
	Module  string
	Version string
}

type StopModuleResponse struct{}

type GetHostnameRequest struct {
	Module   string
	Version  string
	Instance string
}

type GetHostnameResponse struct {
	Hostname string
}
