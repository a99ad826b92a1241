package grpc

// proto.go defines the gRPC service from creditrisk/v1/credit_risk.proto by
// hand. Messages travel with the JSON codec registered in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "creditrisk.v1.CreditRiskService"

// Full method names, as seen by interceptors.
const (
	MethodPredictDefaultRisk = "/" + serviceName + "/PredictDefaultRisk"
	MethodSummarizeProfile   = "/" + serviceName + "/SummarizeProfile"
	MethodDescribeForm       = "/" + serviceName + "/DescribeForm"
)

// CreditRiskServiceServer is the server API for CreditRiskService.
type CreditRiskServiceServer interface {
	PredictDefaultRisk(context.Context, *PredictDefaultRiskRequest) (*PredictDefaultRiskResponse, error)
	SummarizeProfile(context.Context, *SummarizeProfileRequest) (*SummarizeProfileResponse, error)
	DescribeForm(context.Context, *DescribeFormRequest) (*DescribeFormResponse, error)
	mustEmbedUnimplementedCreditRiskServiceServer()
}

// UnimplementedCreditRiskServiceServer provides forward-compatible default implementations.
type UnimplementedCreditRiskServiceServer struct{}

func (UnimplementedCreditRiskServiceServer) PredictDefaultRisk(context.Context, *PredictDefaultRiskRequest) (*PredictDefaultRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictDefaultRisk not implemented")
}
func (UnimplementedCreditRiskServiceServer) SummarizeProfile(context.Context, *SummarizeProfileRequest) (*SummarizeProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SummarizeProfile not implemented")
}
func (UnimplementedCreditRiskServiceServer) DescribeForm(context.Context, *DescribeFormRequest) (*DescribeFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DescribeForm not implemented")
}
func (UnimplementedCreditRiskServiceServer) mustEmbedUnimplementedCreditRiskServiceServer() {}

// RegisterCreditRiskServiceServer registers the CreditRiskServiceServer with the gRPC server.
func RegisterCreditRiskServiceServer(s grpclib.ServiceRegistrar, srv CreditRiskServiceServer) {
	s.RegisterService(&_CreditRiskService_serviceDesc, srv)
}

var _CreditRiskService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CreditRiskServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "PredictDefaultRisk", Handler: _CreditRiskService_PredictDefaultRisk_Handler},
		{MethodName: "SummarizeProfile", Handler: _CreditRiskService_SummarizeProfile_Handler},
		{MethodName: "DescribeForm", Handler: _CreditRiskService_DescribeForm_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "creditrisk/v1/credit_risk.proto",
}

func _CreditRiskService_PredictDefaultRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictDefaultRiskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).PredictDefaultRisk(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodPredictDefaultRisk}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).PredictDefaultRisk(ctx, req.(*PredictDefaultRiskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CreditRiskService_SummarizeProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SummarizeProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).SummarizeProfile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodSummarizeProfile}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).SummarizeProfile(ctx, req.(*SummarizeProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CreditRiskService_DescribeForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DescribeFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditRiskServiceServer).DescribeForm(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: MethodDescribeForm}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditRiskServiceServer).DescribeForm(ctx, req.(*DescribeFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}
