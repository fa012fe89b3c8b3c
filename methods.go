package mcp

// Method is a JSON-RPC method discriminator. Comparison is exact string
// match, case-sensitive; namespaces are "/"-delimited (§4.2).
type Method string

// Request methods (§3 table).
const (
	MethodInitialize             Method = "initialize"
	MethodPing                   Method = "ping"
	MethodToolsList              Method = "tools/list"
	MethodToolsCall              Method = "tools/call"
	MethodPromptsList            Method = "prompts/list"
	MethodPromptsGet             Method = "prompts/get"
	MethodResourcesList          Method = "resources/list"
	MethodResourcesTemplatesList Method = "resources/templates/list"
	MethodResourcesRead          Method = "resources/read"
	MethodResourcesSubscribe     Method = "resources/subscribe"
	MethodResourcesUnsubscribe   Method = "resources/unsubscribe"
	MethodRootsList              Method = "roots/list"
	MethodSamplingCreateMessage  Method = "sampling/createMessage"
	MethodLoggingSetLevel        Method = "logging/setLevel"
	MethodCompletionComplete     Method = "completion/complete"
)

// Notification methods (§3).
const (
	MethodNotifyInitialized          Method = "notifications/initialized"
	MethodNotifyCancelled            Method = "notifications/cancelled"
	MethodNotifyProgress             Method = "notifications/progress"
	MethodNotifyMessage              Method = "notifications/message"
	MethodNotifyPromptsListChanged   Method = "notifications/prompts/list_changed"
	MethodNotifyResourcesListChanged Method = "notifications/resources/list_changed"
	MethodNotifyResourcesUpdated     Method = "notifications/resources/updated"
	MethodNotifyRootsListChanged     Method = "notifications/roots/list_changed"
	MethodNotifyToolsListChanged     Method = "notifications/tools/list_changed"
)

// Direction records which peer role may initiate a given request method.
type Direction int

const (
	// ClientToServer methods are initiated by the client (the side that
	// sent "initialize").
	ClientToServer Direction = iota
	// ServerToClient methods are initiated by the server.
	ServerToClient
	// EitherDirection methods may be initiated by either role (ping).
	EitherDirection
)

// methodDirections is the closed registry of request methods (§4.2).
// handle() rejects a request arriving in the wrong direction with
// CodeMethodNotFound, per §4.2.
var methodDirections = map[Method]Direction{
	MethodInitialize:             ClientToServer,
	MethodPing:                   EitherDirection,
	MethodToolsList:              ClientToServer,
	MethodToolsCall:              ClientToServer,
	MethodPromptsList:            ClientToServer,
	MethodPromptsGet:             ClientToServer,
	MethodResourcesList:          ClientToServer,
	MethodResourcesTemplatesList: ClientToServer,
	MethodResourcesRead:          ClientToServer,
	MethodResourcesSubscribe:     ClientToServer,
	MethodResourcesUnsubscribe:   ClientToServer,
	MethodRootsList:              ServerToClient,
	MethodSamplingCreateMessage:  ServerToClient,
	MethodLoggingSetLevel:        ClientToServer,
	MethodCompletionComplete:     ClientToServer,
}

// Role identifies which end of the connection this Peer plays. Request
// methods are checked against the Peer's Role: a Peer may only invoke a
// handler for a method whose Direction permits being received by that role.
type Role int

const (
	// RoleClient means this Peer sent "initialize" and expects to
	// receive ServerToClient requests (roots/list, sampling/createMessage).
	RoleClient Role = iota
	// RoleServer means this Peer answered "initialize" and expects to
	// receive ClientToServer requests.
	RoleServer
)

// acceptsAsReceiver reports whether a Peer in role r is permitted to
// receive (and therefore dispatch) an incoming request for method m.
func acceptsAsReceiver(r Role, m Method) bool {
	dir, ok := methodDirections[m]
	if !ok {
		return false // unknown method entirely
	}
	switch dir {
	case EitherDirection:
		return true
	case ClientToServer:
		return r == RoleServer
	case ServerToClient:
		return r == RoleClient
	default:
		return false
	}
}
