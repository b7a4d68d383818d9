// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: annotator.proto

package annotator

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	TextAnnotator_Annotate_FullMethodName        = "/annotator.v1.TextAnnotator/Annotate"
	TextAnnotator_ExtractEntities_FullMethodName = "/annotator.v1.TextAnnotator/ExtractEntities"
	TextAnnotator_Health_FullMethodName          = "/annotator.v1.TextAnnotator/Health"
)

// TextAnnotatorClient is the client API for TextAnnotator service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TextAnnotatorClient interface {
	// Annotate segments text into sentences and tokens with lemmas and
	// part-of-speech tags.
	Annotate(ctx context.Context, in *AnnotateRequest, opts ...grpc.CallOption) (*AnnotateResponse, error)
	// ExtractEntities returns named entities recognized in the text.
	ExtractEntities(ctx context.Context, in *ExtractEntitiesRequest, opts ...grpc.CallOption) (*ExtractEntitiesResponse, error)
	// Health reports server readiness and the loaded model.
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type textAnnotatorClient struct {
	cc grpc.ClientConnInterface
}

func NewTextAnnotatorClient(cc grpc.ClientConnInterface) TextAnnotatorClient {
	return &textAnnotatorClient{cc}
}

func (c *textAnnotatorClient) Annotate(ctx context.Context, in *AnnotateRequest, opts ...grpc.CallOption) (*AnnotateResponse, error) {
	out := new(AnnotateResponse)
	err := c.cc.Invoke(ctx, TextAnnotator_Annotate_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *textAnnotatorClient) ExtractEntities(ctx context.Context, in *ExtractEntitiesRequest, opts ...grpc.CallOption) (*ExtractEntitiesResponse, error) {
	out := new(ExtractEntitiesResponse)
	err := c.cc.Invoke(ctx, TextAnnotator_ExtractEntities_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *textAnnotatorClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	out := new(HealthResponse)
	err := c.cc.Invoke(ctx, TextAnnotator_Health_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TextAnnotatorServer is the server API for TextAnnotator service.
// All implementations must embed UnimplementedTextAnnotatorServer
// for forward compatibility
type TextAnnotatorServer interface {
	// Annotate segments text into sentences and tokens with lemmas and
	// part-of-speech tags.
	Annotate(context.Context, *AnnotateRequest) (*AnnotateResponse, error)
	// ExtractEntities returns named entities recognized in the text.
	ExtractEntities(context.Context, *ExtractEntitiesRequest) (*ExtractEntitiesResponse, error)
	// Health reports server readiness and the loaded model.
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	mustEmbedUnimplementedTextAnnotatorServer()
}

// UnimplementedTextAnnotatorServer must be embedded to have forward compatible implementations.
type UnimplementedTextAnnotatorServer struct {
}

func (UnimplementedTextAnnotatorServer) Annotate(context.Context, *AnnotateRequest) (*AnnotateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Annotate not implemented")
}
func (UnimplementedTextAnnotatorServer) ExtractEntities(context.Context, *ExtractEntitiesRequest) (*ExtractEntitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractEntities not implemented")
}
func (UnimplementedTextAnnotatorServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (UnimplementedTextAnnotatorServer) mustEmbedUnimplementedTextAnnotatorServer() {}

// UnsafeTextAnnotatorServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TextAnnotatorServer will
// result in compilation errors.
type UnsafeTextAnnotatorServer interface {
	mustEmbedUnimplementedTextAnnotatorServer()
}

func RegisterTextAnnotatorServer(s grpc.ServiceRegistrar, srv TextAnnotatorServer) {
	s.RegisterService(&TextAnnotator_ServiceDesc, srv)
}

func _TextAnnotator_Annotate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnnotateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TextAnnotatorServer).Annotate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TextAnnotator_Annotate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TextAnnotatorServer).Annotate(ctx, req.(*AnnotateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TextAnnotator_ExtractEntities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractEntitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TextAnnotatorServer).ExtractEntities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TextAnnotator_ExtractEntities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TextAnnotatorServer).ExtractEntities(ctx, req.(*ExtractEntitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TextAnnotator_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TextAnnotatorServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TextAnnotator_Health_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TextAnnotatorServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TextAnnotator_ServiceDesc is the grpc.ServiceDesc for TextAnnotator service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TextAnnotator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "annotator.v1.TextAnnotator",
	HandlerType: (*TextAnnotatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Annotate",
			Handler:    _TextAnnotator_Annotate_Handler,
		},
		{
			MethodName: "ExtractEntities",
			Handler:    _TextAnnotator_ExtractEntities_Handler,
		},
		{
			MethodName: "Health",
			Handler:    _TextAnnotator_Health_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "annotator.proto",
}
