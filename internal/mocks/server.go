package mocks

import (
	"net"

	"github.com/stretchr/testify/mock"
)

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(&m.Mock, t)
	return m
}

func (_m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)
	var r0 net.Listener
	if v := ret.Get(0); v != nil {
		r0 = v.(net.Listener)
	}
	return r0, ret.Error(1)
}
