// Package ros is a stand-in for a robotics middleware client library,
// modeled on ros::NodeHandle. Tests do not import this file directly:
// internal/testfixture.RosStubSource carries the same declarations and is
// written into every temporary on-disk module the tests build. It
// performs no actual networking; every method is a no-op with a shape
// matching what apicall's catalog recognizes.
package ros

// Init registers the calling process as a node, optionally named name.
func Init(name string) {}

// NodeHandle is the scoped entry point for topic, service, and
// parameter operations.
type NodeHandle struct{}

func NewNodeHandle() *NodeHandle { return &NodeHandle{} }

func (*NodeHandle) Advertise(topic string, queueSize int) Publisher { return Publisher{} }

func (*NodeHandle) Subscribe(topic string, queueSize int, cb func(any)) Subscriber {
	return Subscriber{}
}

func (*NodeHandle) AdvertiseService(name string, handler func(any, any) bool) ServiceServer {
	return ServiceServer{}
}

func (*NodeHandle) ServiceClient(name string) ServiceClient { return ServiceClient{} }

func (*NodeHandle) GetParam(name string) (string, bool) { return "", false }

func (*NodeHandle) GetParamCached(name string) (string, bool) { return "", false }

func (*NodeHandle) Param(name string, def any) any { return def }

func (*NodeHandle) HasParam(name string) bool { return false }

func (*NodeHandle) SetParam(name string, value any) {}

func (*NodeHandle) DeleteParam(name string) {}

type Publisher struct{}
type Subscriber struct{}
type ServiceServer struct{}

// ServiceClient is the handle returned by NodeHandle.ServiceClient; Call
// performs the bound-form service call.
type ServiceClient struct{}

func (ServiceClient) Call(req, resp any) bool { return false }

// GetParam, GetParamCached, Param, HasParam, SetParam, DeleteParam, and
// ServiceCall are the free-function ("bare") forms of the NodeHandle
// methods above, used outside of a NodeHandle-scoped context.

func GetParam(name string) (string, bool) { return "", false }

func GetParamCached(name string) (string, bool) { return "", false }

func Param(name string, def any) any { return def }

func HasParam(name string) bool { return false }

func SetParam(name string, value any) {}

func DeleteParam(name string) {}

func ServiceCall(name string, req, resp any) bool { return false }
