// Copyright (C) 2026 Friends Incode
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: rockbox/v1/rockbox.proto

package rockboxv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	LibraryService_GetAlbums_FullMethodName            = "/rockbox.v1.LibraryService/GetAlbums"
	LibraryService_GetArtists_FullMethodName           = "/rockbox.v1.LibraryService/GetArtists"
	LibraryService_GetTracks_FullMethodName            = "/rockbox.v1.LibraryService/GetTracks"
	LibraryService_GetAlbum_FullMethodName             = "/rockbox.v1.LibraryService/GetAlbum"
	LibraryService_GetArtist_FullMethodName            = "/rockbox.v1.LibraryService/GetArtist"
	LibraryService_GetTrack_FullMethodName             = "/rockbox.v1.LibraryService/GetTrack"
	LibraryService_Search_FullMethodName               = "/rockbox.v1.LibraryService/Search"
	LibraryService_LikeTrack_FullMethodName            = "/rockbox.v1.LibraryService/LikeTrack"
	LibraryService_UnlikeTrack_FullMethodName          = "/rockbox.v1.LibraryService/UnlikeTrack"
	LibraryService_LikeAlbum_FullMethodName            = "/rockbox.v1.LibraryService/LikeAlbum"
	LibraryService_UnlikeAlbum_FullMethodName          = "/rockbox.v1.LibraryService/UnlikeAlbum"
	LibraryService_GetLikedTracks_FullMethodName       = "/rockbox.v1.LibraryService/GetLikedTracks"
	LibraryService_GetLikedAlbums_FullMethodName       = "/rockbox.v1.LibraryService/GetLikedAlbums"
	LibraryService_Scan_FullMethodName                 = "/rockbox.v1.LibraryService/Scan"
	LibraryService_FlushAndReloadTracks_FullMethodName = "/rockbox.v1.LibraryService/FlushAndReloadTracks"
)

// LibraryServiceClient is the client API for LibraryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LibraryServiceClient interface {
	GetAlbums(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetAlbumsResponse, error)
	GetArtists(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetArtistsResponse, error)
	GetTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetTracksResponse, error)
	GetAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Album, error)
	GetArtist(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Artist, error)
	GetTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Track, error)
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	LikeTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
	UnlikeTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
	LikeAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
	UnlikeAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
	GetLikedTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetTracksResponse, error)
	GetLikedAlbums(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetAlbumsResponse, error)
	Scan(ctx context.Context, in *ScanRequest, opts ...grpc.CallOption) (*ScanResponse, error)
	FlushAndReloadTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type libraryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLibraryServiceClient(cc grpc.ClientConnInterface) LibraryServiceClient {
	return &libraryServiceClient{cc}
}

func (c *libraryServiceClient) GetAlbums(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetAlbumsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAlbumsResponse)
	err := c.cc.Invoke(ctx, LibraryService_GetAlbums_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetArtists(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetArtistsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetArtistsResponse)
	err := c.cc.Invoke(ctx, LibraryService_GetArtists_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetTracksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTracksResponse)
	err := c.cc.Invoke(ctx, LibraryService_GetTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Album, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Album)
	err := c.cc.Invoke(ctx, LibraryService_GetAlbum_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetArtist(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Artist, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Artist)
	err := c.cc.Invoke(ctx, LibraryService_GetArtist_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Track, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Track)
	err := c.cc.Invoke(ctx, LibraryService_GetTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchResponse)
	err := c.cc.Invoke(ctx, LibraryService_Search_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) LikeTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, LibraryService_LikeTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) UnlikeTrack(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, LibraryService_UnlikeTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) LikeAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, LibraryService_LikeAlbum_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) UnlikeAlbum(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, LibraryService_UnlikeAlbum_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetLikedTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetTracksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTracksResponse)
	err := c.cc.Invoke(ctx, LibraryService_GetLikedTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetLikedAlbums(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetAlbumsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAlbumsResponse)
	err := c.cc.Invoke(ctx, LibraryService_GetLikedAlbums_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) Scan(ctx context.Context, in *ScanRequest, opts ...grpc.CallOption) (*ScanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanResponse)
	err := c.cc.Invoke(ctx, LibraryService_Scan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *libraryServiceClient) FlushAndReloadTracks(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, LibraryService_FlushAndReloadTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LibraryServiceServer is the server API for LibraryService service.
// All implementations must embed UnimplementedLibraryServiceServer
// for forward compatibility.
type LibraryServiceServer interface {
	GetAlbums(context.Context, *Empty) (*GetAlbumsResponse, error)
	GetArtists(context.Context, *Empty) (*GetArtistsResponse, error)
	GetTracks(context.Context, *Empty) (*GetTracksResponse, error)
	GetAlbum(context.Context, *IdRequest) (*Album, error)
	GetArtist(context.Context, *IdRequest) (*Artist, error)
	GetTrack(context.Context, *IdRequest) (*Track, error)
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	LikeTrack(context.Context, *IdRequest) (*Empty, error)
	UnlikeTrack(context.Context, *IdRequest) (*Empty, error)
	LikeAlbum(context.Context, *IdRequest) (*Empty, error)
	UnlikeAlbum(context.Context, *IdRequest) (*Empty, error)
	GetLikedTracks(context.Context, *Empty) (*GetTracksResponse, error)
	GetLikedAlbums(context.Context, *Empty) (*GetAlbumsResponse, error)
	Scan(context.Context, *ScanRequest) (*ScanResponse, error)
	FlushAndReloadTracks(context.Context, *Empty) (*Empty, error)
	mustEmbedUnimplementedLibraryServiceServer()
}

// UnimplementedLibraryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLibraryServiceServer struct{}

func (UnimplementedLibraryServiceServer) GetAlbums(context.Context, *Empty) (*GetAlbumsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAlbums not implemented")
}
func (UnimplementedLibraryServiceServer) GetArtists(context.Context, *Empty) (*GetArtistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArtists not implemented")
}
func (UnimplementedLibraryServiceServer) GetTracks(context.Context, *Empty) (*GetTracksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTracks not implemented")
}
func (UnimplementedLibraryServiceServer) GetAlbum(context.Context, *IdRequest) (*Album, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAlbum not implemented")
}
func (UnimplementedLibraryServiceServer) GetArtist(context.Context, *IdRequest) (*Artist, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArtist not implemented")
}
func (UnimplementedLibraryServiceServer) GetTrack(context.Context, *IdRequest) (*Track, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTrack not implemented")
}
func (UnimplementedLibraryServiceServer) Search(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Search not implemented")
}
func (UnimplementedLibraryServiceServer) LikeTrack(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LikeTrack not implemented")
}
func (UnimplementedLibraryServiceServer) UnlikeTrack(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UnlikeTrack not implemented")
}
func (UnimplementedLibraryServiceServer) LikeAlbum(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method LikeAlbum not implemented")
}
func (UnimplementedLibraryServiceServer) UnlikeAlbum(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method UnlikeAlbum not implemented")
}
func (UnimplementedLibraryServiceServer) GetLikedTracks(context.Context, *Empty) (*GetTracksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLikedTracks not implemented")
}
func (UnimplementedLibraryServiceServer) GetLikedAlbums(context.Context, *Empty) (*GetAlbumsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLikedAlbums not implemented")
}
func (UnimplementedLibraryServiceServer) Scan(context.Context, *ScanRequest) (*ScanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Scan not implemented")
}
func (UnimplementedLibraryServiceServer) FlushAndReloadTracks(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method FlushAndReloadTracks not implemented")
}
func (UnimplementedLibraryServiceServer) mustEmbedUnimplementedLibraryServiceServer() {}
func (UnimplementedLibraryServiceServer) testEmbeddedByValue()                        {}

// UnsafeLibraryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LibraryServiceServer will
// result in compilation errors.
type UnsafeLibraryServiceServer interface {
	mustEmbedUnimplementedLibraryServiceServer()
}

func RegisterLibraryServiceServer(s grpc.ServiceRegistrar, srv LibraryServiceServer) {
	// If the following call panics, it indicates UnimplementedLibraryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LibraryService_ServiceDesc, srv)
}

func _LibraryService_GetAlbums_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetAlbums(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetAlbums_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetAlbums(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetArtists_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetArtists(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetArtists_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetArtists(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetTracks(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetAlbum_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetAlbum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetAlbum_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetAlbum(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetArtist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetArtist(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetArtist_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetArtist(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetTrack(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_Search_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_Search_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).Search(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_LikeTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).LikeTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_LikeTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).LikeTrack(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_UnlikeTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).UnlikeTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_UnlikeTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).UnlikeTrack(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_LikeAlbum_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).LikeAlbum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_LikeAlbum_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).LikeAlbum(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_UnlikeAlbum_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).UnlikeAlbum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_UnlikeAlbum_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).UnlikeAlbum(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetLikedTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetLikedTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetLikedTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetLikedTracks(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_GetLikedAlbums_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).GetLikedAlbums(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_GetLikedAlbums_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).GetLikedAlbums(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_Scan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).Scan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_Scan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).Scan(ctx, req.(*ScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LibraryService_FlushAndReloadTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LibraryServiceServer).FlushAndReloadTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LibraryService_FlushAndReloadTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LibraryServiceServer).FlushAndReloadTracks(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// LibraryService_ServiceDesc is the grpc.ServiceDesc for LibraryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LibraryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.LibraryService",
	HandlerType: (*LibraryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAlbums",
			Handler:    _LibraryService_GetAlbums_Handler,
		},
		{
			MethodName: "GetArtists",
			Handler:    _LibraryService_GetArtists_Handler,
		},
		{
			MethodName: "GetTracks",
			Handler:    _LibraryService_GetTracks_Handler,
		},
		{
			MethodName: "GetAlbum",
			Handler:    _LibraryService_GetAlbum_Handler,
		},
		{
			MethodName: "GetArtist",
			Handler:    _LibraryService_GetArtist_Handler,
		},
		{
			MethodName: "GetTrack",
			Handler:    _LibraryService_GetTrack_Handler,
		},
		{
			MethodName: "Search",
			Handler:    _LibraryService_Search_Handler,
		},
		{
			MethodName: "LikeTrack",
			Handler:    _LibraryService_LikeTrack_Handler,
		},
		{
			MethodName: "UnlikeTrack",
			Handler:    _LibraryService_UnlikeTrack_Handler,
		},
		{
			MethodName: "LikeAlbum",
			Handler:    _LibraryService_LikeAlbum_Handler,
		},
		{
			MethodName: "UnlikeAlbum",
			Handler:    _LibraryService_UnlikeAlbum_Handler,
		},
		{
			MethodName: "GetLikedTracks",
			Handler:    _LibraryService_GetLikedTracks_Handler,
		},
		{
			MethodName: "GetLikedAlbums",
			Handler:    _LibraryService_GetLikedAlbums_Handler,
		},
		{
			MethodName: "Scan",
			Handler:    _LibraryService_Scan_Handler,
		},
		{
			MethodName: "FlushAndReloadTracks",
			Handler:    _LibraryService_FlushAndReloadTracks_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	PlaybackService_Play_FullMethodName               = "/rockbox.v1.PlaybackService/Play"
	PlaybackService_Pause_FullMethodName              = "/rockbox.v1.PlaybackService/Pause"
	PlaybackService_Resume_FullMethodName             = "/rockbox.v1.PlaybackService/Resume"
	PlaybackService_Stop_FullMethodName               = "/rockbox.v1.PlaybackService/Stop"
	PlaybackService_HardStop_FullMethodName           = "/rockbox.v1.PlaybackService/HardStop"
	PlaybackService_Next_FullMethodName               = "/rockbox.v1.PlaybackService/Next"
	PlaybackService_Previous_FullMethodName           = "/rockbox.v1.PlaybackService/Previous"
	PlaybackService_Seek_FullMethodName               = "/rockbox.v1.PlaybackService/Seek"
	PlaybackService_GetStatus_FullMethodName          = "/rockbox.v1.PlaybackService/GetStatus"
	PlaybackService_GetCurrentTrack_FullMethodName    = "/rockbox.v1.PlaybackService/GetCurrentTrack"
	PlaybackService_GetNextTrack_FullMethodName       = "/rockbox.v1.PlaybackService/GetNextTrack"
	PlaybackService_GetFilePosition_FullMethodName    = "/rockbox.v1.PlaybackService/GetFilePosition"
	PlaybackService_PlayAlbum_FullMethodName          = "/rockbox.v1.PlaybackService/PlayAlbum"
	PlaybackService_PlayArtistTracks_FullMethodName   = "/rockbox.v1.PlaybackService/PlayArtistTracks"
	PlaybackService_PlayDirectory_FullMethodName      = "/rockbox.v1.PlaybackService/PlayDirectory"
	PlaybackService_PlayTrack_FullMethodName          = "/rockbox.v1.PlaybackService/PlayTrack"
	PlaybackService_PlayLikedTracks_FullMethodName    = "/rockbox.v1.PlaybackService/PlayLikedTracks"
	PlaybackService_PlayAllTracks_FullMethodName      = "/rockbox.v1.PlaybackService/PlayAllTracks"
	PlaybackService_StreamCurrentTrack_FullMethodName = "/rockbox.v1.PlaybackService/StreamCurrentTrack"
	PlaybackService_StreamStatus_FullMethodName       = "/rockbox.v1.PlaybackService/StreamStatus"
)

// PlaybackServiceClient is the client API for PlaybackService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PlaybackServiceClient interface {
	Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*Empty, error)
	Pause(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	Resume(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	Stop(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	HardStop(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	Next(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	Previous(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
	Seek(ctx context.Context, in *SeekRequest, opts ...grpc.CallOption) (*Empty, error)
	GetStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PlaybackStatus, error)
	GetCurrentTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CurrentTrack, error)
	GetNextTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CurrentTrack, error)
	GetFilePosition(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetFilePositionResponse, error)
	PlayAlbum(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error)
	PlayArtistTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error)
	PlayDirectory(ctx context.Context, in *PlayDirectoryRequest, opts ...grpc.CallOption) (*Empty, error)
	PlayTrack(ctx context.Context, in *PlayTrackRequest, opts ...grpc.CallOption) (*Empty, error)
	PlayLikedTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error)
	PlayAllTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error)
	StreamCurrentTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CurrentTrack], error)
	StreamStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PlaybackStatus], error)
}

type playbackServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlaybackServiceClient(cc grpc.ClientConnInterface) PlaybackServiceClient {
	return &playbackServiceClient{cc}
}

func (c *playbackServiceClient) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Play_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Pause(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Pause_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Resume(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Resume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Stop(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Stop_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) HardStop(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_HardStop_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Next(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Next_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Previous(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Previous_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) Seek(ctx context.Context, in *SeekRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_Seek_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) GetStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PlaybackStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlaybackStatus)
	err := c.cc.Invoke(ctx, PlaybackService_GetStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) GetCurrentTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CurrentTrack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CurrentTrack)
	err := c.cc.Invoke(ctx, PlaybackService_GetCurrentTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) GetNextTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CurrentTrack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CurrentTrack)
	err := c.cc.Invoke(ctx, PlaybackService_GetNextTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) GetFilePosition(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetFilePositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFilePositionResponse)
	err := c.cc.Invoke(ctx, PlaybackService_GetFilePosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayAlbum(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayAlbum_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayArtistTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayArtistTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayDirectory(ctx context.Context, in *PlayDirectoryRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayTrack(ctx context.Context, in *PlayTrackRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayLikedTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayLikedTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) PlayAllTracks(ctx context.Context, in *PlaySelectionRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaybackService_PlayAllTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playbackServiceClient) StreamCurrentTrack(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CurrentTrack], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PlaybackService_ServiceDesc.Streams[0], PlaybackService_StreamCurrentTrack_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, CurrentTrack]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaybackService_StreamCurrentTrackClient = grpc.ServerStreamingClient[CurrentTrack]

func (c *playbackServiceClient) StreamStatus(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PlaybackStatus], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PlaybackService_ServiceDesc.Streams[1], PlaybackService_StreamStatus_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, PlaybackStatus]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaybackService_StreamStatusClient = grpc.ServerStreamingClient[PlaybackStatus]

// PlaybackServiceServer is the server API for PlaybackService service.
// All implementations must embed UnimplementedPlaybackServiceServer
// for forward compatibility.
type PlaybackServiceServer interface {
	Play(context.Context, *PlayRequest) (*Empty, error)
	Pause(context.Context, *Empty) (*Empty, error)
	Resume(context.Context, *Empty) (*Empty, error)
	Stop(context.Context, *Empty) (*Empty, error)
	HardStop(context.Context, *Empty) (*Empty, error)
	Next(context.Context, *Empty) (*Empty, error)
	Previous(context.Context, *Empty) (*Empty, error)
	Seek(context.Context, *SeekRequest) (*Empty, error)
	GetStatus(context.Context, *Empty) (*PlaybackStatus, error)
	GetCurrentTrack(context.Context, *Empty) (*CurrentTrack, error)
	GetNextTrack(context.Context, *Empty) (*CurrentTrack, error)
	GetFilePosition(context.Context, *Empty) (*GetFilePositionResponse, error)
	PlayAlbum(context.Context, *PlaySelectionRequest) (*Empty, error)
	PlayArtistTracks(context.Context, *PlaySelectionRequest) (*Empty, error)
	PlayDirectory(context.Context, *PlayDirectoryRequest) (*Empty, error)
	PlayTrack(context.Context, *PlayTrackRequest) (*Empty, error)
	PlayLikedTracks(context.Context, *PlaySelectionRequest) (*Empty, error)
	PlayAllTracks(context.Context, *PlaySelectionRequest) (*Empty, error)
	StreamCurrentTrack(*Empty, grpc.ServerStreamingServer[CurrentTrack]) error
	StreamStatus(*Empty, grpc.ServerStreamingServer[PlaybackStatus]) error
	mustEmbedUnimplementedPlaybackServiceServer()
}

// UnimplementedPlaybackServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlaybackServiceServer struct{}

func (UnimplementedPlaybackServiceServer) Play(context.Context, *PlayRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Play not implemented")
}
func (UnimplementedPlaybackServiceServer) Pause(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Pause not implemented")
}
func (UnimplementedPlaybackServiceServer) Resume(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Resume not implemented")
}
func (UnimplementedPlaybackServiceServer) Stop(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Stop not implemented")
}
func (UnimplementedPlaybackServiceServer) HardStop(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method HardStop not implemented")
}
func (UnimplementedPlaybackServiceServer) Next(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Next not implemented")
}
func (UnimplementedPlaybackServiceServer) Previous(context.Context, *Empty) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Previous not implemented")
}
func (UnimplementedPlaybackServiceServer) Seek(context.Context, *SeekRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Seek not implemented")
}
func (UnimplementedPlaybackServiceServer) GetStatus(context.Context, *Empty) (*PlaybackStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}
func (UnimplementedPlaybackServiceServer) GetCurrentTrack(context.Context, *Empty) (*CurrentTrack, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentTrack not implemented")
}
func (UnimplementedPlaybackServiceServer) GetNextTrack(context.Context, *Empty) (*CurrentTrack, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextTrack not implemented")
}
func (UnimplementedPlaybackServiceServer) GetFilePosition(context.Context, *Empty) (*GetFilePositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFilePosition not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayAlbum(context.Context, *PlaySelectionRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayAlbum not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayArtistTracks(context.Context, *PlaySelectionRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayArtistTracks not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayDirectory(context.Context, *PlayDirectoryRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayDirectory not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayTrack(context.Context, *PlayTrackRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayTrack not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayLikedTracks(context.Context, *PlaySelectionRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayLikedTracks not implemented")
}
func (UnimplementedPlaybackServiceServer) PlayAllTracks(context.Context, *PlaySelectionRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayAllTracks not implemented")
}
func (UnimplementedPlaybackServiceServer) StreamCurrentTrack(*Empty, grpc.ServerStreamingServer[CurrentTrack]) error {
	return status.Error(codes.Unimplemented, "method StreamCurrentTrack not implemented")
}
func (UnimplementedPlaybackServiceServer) StreamStatus(*Empty, grpc.ServerStreamingServer[PlaybackStatus]) error {
	return status.Error(codes.Unimplemented, "method StreamStatus not implemented")
}
func (UnimplementedPlaybackServiceServer) mustEmbedUnimplementedPlaybackServiceServer() {}
func (UnimplementedPlaybackServiceServer) testEmbeddedByValue()                         {}

// UnsafePlaybackServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlaybackServiceServer will
// result in compilation errors.
type UnsafePlaybackServiceServer interface {
	mustEmbedUnimplementedPlaybackServiceServer()
}

func RegisterPlaybackServiceServer(s grpc.ServiceRegistrar, srv PlaybackServiceServer) {
	// If the following call panics, it indicates UnimplementedPlaybackServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlaybackService_ServiceDesc, srv)
}

func _PlaybackService_Play_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Play(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Play_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Play(ctx, req.(*PlayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Pause_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Pause(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Pause_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Pause(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Resume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Resume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Resume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Resume(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Stop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Stop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Stop_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Stop(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_HardStop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).HardStop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_HardStop_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).HardStop(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Next_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Next(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Next_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Next(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Previous_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Previous(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Previous_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Previous(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_Seek_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SeekRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).Seek(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_Seek_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).Seek(ctx, req.(*SeekRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).GetStatus(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_GetCurrentTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).GetCurrentTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_GetCurrentTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).GetCurrentTrack(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_GetNextTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).GetNextTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_GetNextTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).GetNextTrack(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_GetFilePosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).GetFilePosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_GetFilePosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).GetFilePosition(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayAlbum_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaySelectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayAlbum(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayAlbum_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayAlbum(ctx, req.(*PlaySelectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayArtistTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaySelectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayArtistTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayArtistTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayArtistTracks(ctx, req.(*PlaySelectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayDirectory(ctx, req.(*PlayDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlayTrackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayTrack(ctx, req.(*PlayTrackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayLikedTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaySelectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayLikedTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayLikedTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayLikedTracks(ctx, req.(*PlaySelectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_PlayAllTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlaySelectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaybackServiceServer).PlayAllTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaybackService_PlayAllTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaybackServiceServer).PlayAllTracks(ctx, req.(*PlaySelectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaybackService_StreamCurrentTrack_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PlaybackServiceServer).StreamCurrentTrack(m, &grpc.GenericServerStream[Empty, CurrentTrack]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaybackService_StreamCurrentTrackServer = grpc.ServerStreamingServer[CurrentTrack]

func _PlaybackService_StreamStatus_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PlaybackServiceServer).StreamStatus(m, &grpc.GenericServerStream[Empty, PlaybackStatus]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaybackService_StreamStatusServer = grpc.ServerStreamingServer[PlaybackStatus]

// PlaybackService_ServiceDesc is the grpc.ServiceDesc for PlaybackService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlaybackService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.PlaybackService",
	HandlerType: (*PlaybackServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Play",
			Handler:    _PlaybackService_Play_Handler,
		},
		{
			MethodName: "Pause",
			Handler:    _PlaybackService_Pause_Handler,
		},
		{
			MethodName: "Resume",
			Handler:    _PlaybackService_Resume_Handler,
		},
		{
			MethodName: "Stop",
			Handler:    _PlaybackService_Stop_Handler,
		},
		{
			MethodName: "HardStop",
			Handler:    _PlaybackService_HardStop_Handler,
		},
		{
			MethodName: "Next",
			Handler:    _PlaybackService_Next_Handler,
		},
		{
			MethodName: "Previous",
			Handler:    _PlaybackService_Previous_Handler,
		},
		{
			MethodName: "Seek",
			Handler:    _PlaybackService_Seek_Handler,
		},
		{
			MethodName: "GetStatus",
			Handler:    _PlaybackService_GetStatus_Handler,
		},
		{
			MethodName: "GetCurrentTrack",
			Handler:    _PlaybackService_GetCurrentTrack_Handler,
		},
		{
			MethodName: "GetNextTrack",
			Handler:    _PlaybackService_GetNextTrack_Handler,
		},
		{
			MethodName: "GetFilePosition",
			Handler:    _PlaybackService_GetFilePosition_Handler,
		},
		{
			MethodName: "PlayAlbum",
			Handler:    _PlaybackService_PlayAlbum_Handler,
		},
		{
			MethodName: "PlayArtistTracks",
			Handler:    _PlaybackService_PlayArtistTracks_Handler,
		},
		{
			MethodName: "PlayDirectory",
			Handler:    _PlaybackService_PlayDirectory_Handler,
		},
		{
			MethodName: "PlayTrack",
			Handler:    _PlaybackService_PlayTrack_Handler,
		},
		{
			MethodName: "PlayLikedTracks",
			Handler:    _PlaybackService_PlayLikedTracks_Handler,
		},
		{
			MethodName: "PlayAllTracks",
			Handler:    _PlaybackService_PlayAllTracks_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamCurrentTrack",
			Handler:       _PlaybackService_StreamCurrentTrack_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamStatus",
			Handler:       _PlaybackService_StreamStatus_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	PlaylistService_Create_FullMethodName         = "/rockbox.v1.PlaylistService/Create"
	PlaylistService_List_FullMethodName           = "/rockbox.v1.PlaylistService/List"
	PlaylistService_Get_FullMethodName            = "/rockbox.v1.PlaylistService/Get"
	PlaylistService_Rename_FullMethodName         = "/rockbox.v1.PlaylistService/Rename"
	PlaylistService_Delete_FullMethodName         = "/rockbox.v1.PlaylistService/Delete"
	PlaylistService_InsertTracks_FullMethodName   = "/rockbox.v1.PlaylistService/InsertTracks"
	PlaylistService_RemoveTrack_FullMethodName    = "/rockbox.v1.PlaylistService/RemoveTrack"
	PlaylistService_GetCurrent_FullMethodName     = "/rockbox.v1.PlaylistService/GetCurrent"
	PlaylistService_Shuffle_FullMethodName        = "/rockbox.v1.PlaylistService/Shuffle"
	PlaylistService_StreamPlaylist_FullMethodName = "/rockbox.v1.PlaylistService/StreamPlaylist"
	PlaylistService_CreateFolder_FullMethodName   = "/rockbox.v1.PlaylistService/CreateFolder"
	PlaylistService_ListFolders_FullMethodName    = "/rockbox.v1.PlaylistService/ListFolders"
	PlaylistService_DeleteFolder_FullMethodName   = "/rockbox.v1.PlaylistService/DeleteFolder"
)

// PlaylistServiceClient is the client API for PlaylistService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PlaylistServiceClient interface {
	Create(ctx context.Context, in *CreatePlaylistRequest, opts ...grpc.CallOption) (*CreatePlaylistResponse, error)
	List(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPlaylistsResponse, error)
	Get(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Playlist, error)
	Rename(ctx context.Context, in *RenamePlaylistRequest, opts ...grpc.CallOption) (*Empty, error)
	Delete(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
	InsertTracks(ctx context.Context, in *InsertPlaylistTracksRequest, opts ...grpc.CallOption) (*Empty, error)
	RemoveTrack(ctx context.Context, in *RemovePlaylistTrackRequest, opts ...grpc.CallOption) (*Empty, error)
	GetCurrent(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PlaylistSnapshot, error)
	Shuffle(ctx context.Context, in *ShuffleRequest, opts ...grpc.CallOption) (*Empty, error)
	StreamPlaylist(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PlaylistSnapshot], error)
	CreateFolder(ctx context.Context, in *CreateFolderRequest, opts ...grpc.CallOption) (*Folder, error)
	ListFolders(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListFoldersResponse, error)
	DeleteFolder(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error)
}

type playlistServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlaylistServiceClient(cc grpc.ClientConnInterface) PlaylistServiceClient {
	return &playlistServiceClient{cc}
}

func (c *playlistServiceClient) Create(ctx context.Context, in *CreatePlaylistRequest, opts ...grpc.CallOption) (*CreatePlaylistResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePlaylistResponse)
	err := c.cc.Invoke(ctx, PlaylistService_Create_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) List(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPlaylistsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPlaylistsResponse)
	err := c.cc.Invoke(ctx, PlaylistService_List_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) Get(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Playlist, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Playlist)
	err := c.cc.Invoke(ctx, PlaylistService_Get_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) Rename(ctx context.Context, in *RenamePlaylistRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_Rename_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) Delete(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_Delete_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) InsertTracks(ctx context.Context, in *InsertPlaylistTracksRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_InsertTracks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) RemoveTrack(ctx context.Context, in *RemovePlaylistTrackRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_RemoveTrack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) GetCurrent(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PlaylistSnapshot, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlaylistSnapshot)
	err := c.cc.Invoke(ctx, PlaylistService_GetCurrent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) Shuffle(ctx context.Context, in *ShuffleRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_Shuffle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) StreamPlaylist(ctx context.Context, in *Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PlaylistSnapshot], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &PlaylistService_ServiceDesc.Streams[0], PlaylistService_StreamPlaylist_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, PlaylistSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaylistService_StreamPlaylistClient = grpc.ServerStreamingClient[PlaylistSnapshot]

func (c *playlistServiceClient) CreateFolder(ctx context.Context, in *CreateFolderRequest, opts ...grpc.CallOption) (*Folder, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Folder)
	err := c.cc.Invoke(ctx, PlaylistService_CreateFolder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) ListFolders(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListFoldersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFoldersResponse)
	err := c.cc.Invoke(ctx, PlaylistService_ListFolders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playlistServiceClient) DeleteFolder(ctx context.Context, in *IdRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, PlaylistService_DeleteFolder_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlaylistServiceServer is the server API for PlaylistService service.
// All implementations must embed UnimplementedPlaylistServiceServer
// for forward compatibility.
type PlaylistServiceServer interface {
	Create(context.Context, *CreatePlaylistRequest) (*CreatePlaylistResponse, error)
	List(context.Context, *Empty) (*ListPlaylistsResponse, error)
	Get(context.Context, *IdRequest) (*Playlist, error)
	Rename(context.Context, *RenamePlaylistRequest) (*Empty, error)
	Delete(context.Context, *IdRequest) (*Empty, error)
	InsertTracks(context.Context, *InsertPlaylistTracksRequest) (*Empty, error)
	RemoveTrack(context.Context, *RemovePlaylistTrackRequest) (*Empty, error)
	GetCurrent(context.Context, *Empty) (*PlaylistSnapshot, error)
	Shuffle(context.Context, *ShuffleRequest) (*Empty, error)
	StreamPlaylist(*Empty, grpc.ServerStreamingServer[PlaylistSnapshot]) error
	CreateFolder(context.Context, *CreateFolderRequest) (*Folder, error)
	ListFolders(context.Context, *Empty) (*ListFoldersResponse, error)
	DeleteFolder(context.Context, *IdRequest) (*Empty, error)
	mustEmbedUnimplementedPlaylistServiceServer()
}

// UnimplementedPlaylistServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlaylistServiceServer struct{}

func (UnimplementedPlaylistServiceServer) Create(context.Context, *CreatePlaylistRequest) (*CreatePlaylistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedPlaylistServiceServer) List(context.Context, *Empty) (*ListPlaylistsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedPlaylistServiceServer) Get(context.Context, *IdRequest) (*Playlist, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedPlaylistServiceServer) Rename(context.Context, *RenamePlaylistRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Rename not implemented")
}
func (UnimplementedPlaylistServiceServer) Delete(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedPlaylistServiceServer) InsertTracks(context.Context, *InsertPlaylistTracksRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertTracks not implemented")
}
func (UnimplementedPlaylistServiceServer) RemoveTrack(context.Context, *RemovePlaylistTrackRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveTrack not implemented")
}
func (UnimplementedPlaylistServiceServer) GetCurrent(context.Context, *Empty) (*PlaylistSnapshot, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrent not implemented")
}
func (UnimplementedPlaylistServiceServer) Shuffle(context.Context, *ShuffleRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Shuffle not implemented")
}
func (UnimplementedPlaylistServiceServer) StreamPlaylist(*Empty, grpc.ServerStreamingServer[PlaylistSnapshot]) error {
	return status.Error(codes.Unimplemented, "method StreamPlaylist not implemented")
}
func (UnimplementedPlaylistServiceServer) CreateFolder(context.Context, *CreateFolderRequest) (*Folder, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFolder not implemented")
}
func (UnimplementedPlaylistServiceServer) ListFolders(context.Context, *Empty) (*ListFoldersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFolders not implemented")
}
func (UnimplementedPlaylistServiceServer) DeleteFolder(context.Context, *IdRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteFolder not implemented")
}
func (UnimplementedPlaylistServiceServer) mustEmbedUnimplementedPlaylistServiceServer() {}
func (UnimplementedPlaylistServiceServer) testEmbeddedByValue()                         {}

// UnsafePlaylistServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlaylistServiceServer will
// result in compilation errors.
type UnsafePlaylistServiceServer interface {
	mustEmbedUnimplementedPlaylistServiceServer()
}

func RegisterPlaylistServiceServer(s grpc.ServiceRegistrar, srv PlaylistServiceServer) {
	// If the following call panics, it indicates UnimplementedPlaylistServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlaylistService_ServiceDesc, srv)
}

func _PlaylistService_Create_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePlaylistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).Create(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_Create_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).Create(ctx, req.(*CreatePlaylistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_List_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).List(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_Get_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_Get_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).Get(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_Rename_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenamePlaylistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).Rename(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_Rename_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).Rename(ctx, req.(*RenamePlaylistRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_Delete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).Delete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_Delete_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).Delete(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_InsertTracks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InsertPlaylistTracksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).InsertTracks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_InsertTracks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).InsertTracks(ctx, req.(*InsertPlaylistTracksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_RemoveTrack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemovePlaylistTrackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).RemoveTrack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_RemoveTrack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).RemoveTrack(ctx, req.(*RemovePlaylistTrackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_GetCurrent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).GetCurrent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_GetCurrent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).GetCurrent(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_Shuffle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShuffleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).Shuffle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_Shuffle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).Shuffle(ctx, req.(*ShuffleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_StreamPlaylist_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PlaylistServiceServer).StreamPlaylist(m, &grpc.GenericServerStream[Empty, PlaylistSnapshot]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type PlaylistService_StreamPlaylistServer = grpc.ServerStreamingServer[PlaylistSnapshot]

func _PlaylistService_CreateFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFolderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).CreateFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_CreateFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).CreateFolder(ctx, req.(*CreateFolderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_ListFolders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).ListFolders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_ListFolders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).ListFolders(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlaylistService_DeleteFolder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlaylistServiceServer).DeleteFolder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlaylistService_DeleteFolder_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlaylistServiceServer).DeleteFolder(ctx, req.(*IdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlaylistService_ServiceDesc is the grpc.ServiceDesc for PlaylistService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlaylistService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.PlaylistService",
	HandlerType: (*PlaylistServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Create",
			Handler:    _PlaylistService_Create_Handler,
		},
		{
			MethodName: "List",
			Handler:    _PlaylistService_List_Handler,
		},
		{
			MethodName: "Get",
			Handler:    _PlaylistService_Get_Handler,
		},
		{
			MethodName: "Rename",
			Handler:    _PlaylistService_Rename_Handler,
		},
		{
			MethodName: "Delete",
			Handler:    _PlaylistService_Delete_Handler,
		},
		{
			MethodName: "InsertTracks",
			Handler:    _PlaylistService_InsertTracks_Handler,
		},
		{
			MethodName: "RemoveTrack",
			Handler:    _PlaylistService_RemoveTrack_Handler,
		},
		{
			MethodName: "GetCurrent",
			Handler:    _PlaylistService_GetCurrent_Handler,
		},
		{
			MethodName: "Shuffle",
			Handler:    _PlaylistService_Shuffle_Handler,
		},
		{
			MethodName: "CreateFolder",
			Handler:    _PlaylistService_CreateFolder_Handler,
		},
		{
			MethodName: "ListFolders",
			Handler:    _PlaylistService_ListFolders_Handler,
		},
		{
			MethodName: "DeleteFolder",
			Handler:    _PlaylistService_DeleteFolder_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamPlaylist",
			Handler:       _PlaylistService_StreamPlaylist_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	SoundService_GetVolume_FullMethodName    = "/rockbox.v1.SoundService/GetVolume"
	SoundService_SetVolume_FullMethodName    = "/rockbox.v1.SoundService/SetVolume"
	SoundService_AdjustVolume_FullMethodName = "/rockbox.v1.SoundService/AdjustVolume"
)

// SoundServiceClient is the client API for SoundService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SoundServiceClient interface {
	GetVolume(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Volume, error)
	SetVolume(ctx context.Context, in *Volume, opts ...grpc.CallOption) (*Empty, error)
	AdjustVolume(ctx context.Context, in *AdjustVolumeRequest, opts ...grpc.CallOption) (*Empty, error)
}

type soundServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSoundServiceClient(cc grpc.ClientConnInterface) SoundServiceClient {
	return &soundServiceClient{cc}
}

func (c *soundServiceClient) GetVolume(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Volume, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Volume)
	err := c.cc.Invoke(ctx, SoundService_GetVolume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *soundServiceClient) SetVolume(ctx context.Context, in *Volume, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, SoundService_SetVolume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *soundServiceClient) AdjustVolume(ctx context.Context, in *AdjustVolumeRequest, opts ...grpc.CallOption) (*Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Empty)
	err := c.cc.Invoke(ctx, SoundService_AdjustVolume_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SoundServiceServer is the server API for SoundService service.
// All implementations must embed UnimplementedSoundServiceServer
// for forward compatibility.
type SoundServiceServer interface {
	GetVolume(context.Context, *Empty) (*Volume, error)
	SetVolume(context.Context, *Volume) (*Empty, error)
	AdjustVolume(context.Context, *AdjustVolumeRequest) (*Empty, error)
	mustEmbedUnimplementedSoundServiceServer()
}

// UnimplementedSoundServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSoundServiceServer struct{}

func (UnimplementedSoundServiceServer) GetVolume(context.Context, *Empty) (*Volume, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVolume not implemented")
}
func (UnimplementedSoundServiceServer) SetVolume(context.Context, *Volume) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method SetVolume not implemented")
}
func (UnimplementedSoundServiceServer) AdjustVolume(context.Context, *AdjustVolumeRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AdjustVolume not implemented")
}
func (UnimplementedSoundServiceServer) mustEmbedUnimplementedSoundServiceServer() {}
func (UnimplementedSoundServiceServer) testEmbeddedByValue()                      {}

// UnsafeSoundServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SoundServiceServer will
// result in compilation errors.
type UnsafeSoundServiceServer interface {
	mustEmbedUnimplementedSoundServiceServer()
}

func RegisterSoundServiceServer(s grpc.ServiceRegistrar, srv SoundServiceServer) {
	// If the following call panics, it indicates UnimplementedSoundServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SoundService_ServiceDesc, srv)
}

func _SoundService_GetVolume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SoundServiceServer).GetVolume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SoundService_GetVolume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SoundServiceServer).GetVolume(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SoundService_SetVolume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Volume)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SoundServiceServer).SetVolume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SoundService_SetVolume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SoundServiceServer).SetVolume(ctx, req.(*Volume))
	}
	return interceptor(ctx, in, info, handler)
}

func _SoundService_AdjustVolume_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdjustVolumeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SoundServiceServer).AdjustVolume(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SoundService_AdjustVolume_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SoundServiceServer).AdjustVolume(ctx, req.(*AdjustVolumeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SoundService_ServiceDesc is the grpc.ServiceDesc for SoundService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SoundService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.SoundService",
	HandlerType: (*SoundServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVolume",
			Handler:    _SoundService_GetVolume_Handler,
		},
		{
			MethodName: "SetVolume",
			Handler:    _SoundService_SetVolume_Handler,
		},
		{
			MethodName: "AdjustVolume",
			Handler:    _SoundService_AdjustVolume_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	SettingsService_GetSettings_FullMethodName  = "/rockbox.v1.SettingsService/GetSettings"
	SettingsService_SaveSettings_FullMethodName = "/rockbox.v1.SettingsService/SaveSettings"
)

// SettingsServiceClient is the client API for SettingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SettingsServiceClient interface {
	GetSettings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Settings, error)
	SaveSettings(ctx context.Context, in *Settings, opts ...grpc.CallOption) (*Settings, error)
}

type settingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsServiceClient(cc grpc.ClientConnInterface) SettingsServiceClient {
	return &settingsServiceClient{cc}
}

func (c *settingsServiceClient) GetSettings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Settings, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Settings)
	err := c.cc.Invoke(ctx, SettingsService_GetSettings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settingsServiceClient) SaveSettings(ctx context.Context, in *Settings, opts ...grpc.CallOption) (*Settings, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Settings)
	err := c.cc.Invoke(ctx, SettingsService_SaveSettings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SettingsServiceServer is the server API for SettingsService service.
// All implementations must embed UnimplementedSettingsServiceServer
// for forward compatibility.
type SettingsServiceServer interface {
	GetSettings(context.Context, *Empty) (*Settings, error)
	SaveSettings(context.Context, *Settings) (*Settings, error)
	mustEmbedUnimplementedSettingsServiceServer()
}

// UnimplementedSettingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSettingsServiceServer struct{}

func (UnimplementedSettingsServiceServer) GetSettings(context.Context, *Empty) (*Settings, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSettings not implemented")
}
func (UnimplementedSettingsServiceServer) SaveSettings(context.Context, *Settings) (*Settings, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveSettings not implemented")
}
func (UnimplementedSettingsServiceServer) mustEmbedUnimplementedSettingsServiceServer() {}
func (UnimplementedSettingsServiceServer) testEmbeddedByValue()                         {}

// UnsafeSettingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SettingsServiceServer will
// result in compilation errors.
type UnsafeSettingsServiceServer interface {
	mustEmbedUnimplementedSettingsServiceServer()
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	// If the following call panics, it indicates UnimplementedSettingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SettingsService_ServiceDesc, srv)
}

func _SettingsService_GetSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettingsServiceServer).GetSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SettingsService_GetSettings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettingsServiceServer).GetSettings(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SettingsService_SaveSettings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Settings)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettingsServiceServer).SaveSettings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SettingsService_SaveSettings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettingsServiceServer).SaveSettings(ctx, req.(*Settings))
	}
	return interceptor(ctx, in, info, handler)
}

// SettingsService_ServiceDesc is the grpc.ServiceDesc for SettingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SettingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.SettingsService",
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSettings",
			Handler:    _SettingsService_GetSettings_Handler,
		},
		{
			MethodName: "SaveSettings",
			Handler:    _SettingsService_SaveSettings_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	BrowseService_ListDirectory_FullMethodName = "/rockbox.v1.BrowseService/ListDirectory"
	BrowseService_ListAll_FullMethodName       = "/rockbox.v1.BrowseService/ListAll"
)

// BrowseServiceClient is the client API for BrowseService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BrowseServiceClient interface {
	ListDirectory(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListDirectoryResponse, error)
	ListAll(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListAllResponse, error)
}

type browseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBrowseServiceClient(cc grpc.ClientConnInterface) BrowseServiceClient {
	return &browseServiceClient{cc}
}

func (c *browseServiceClient) ListDirectory(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDirectoryResponse)
	err := c.cc.Invoke(ctx, BrowseService_ListDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *browseServiceClient) ListAll(ctx context.Context, in *ListDirectoryRequest, opts ...grpc.CallOption) (*ListAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAllResponse)
	err := c.cc.Invoke(ctx, BrowseService_ListAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BrowseServiceServer is the server API for BrowseService service.
// All implementations must embed UnimplementedBrowseServiceServer
// for forward compatibility.
type BrowseServiceServer interface {
	ListDirectory(context.Context, *ListDirectoryRequest) (*ListDirectoryResponse, error)
	ListAll(context.Context, *ListDirectoryRequest) (*ListAllResponse, error)
	mustEmbedUnimplementedBrowseServiceServer()
}

// UnimplementedBrowseServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBrowseServiceServer struct{}

func (UnimplementedBrowseServiceServer) ListDirectory(context.Context, *ListDirectoryRequest) (*ListDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDirectory not implemented")
}
func (UnimplementedBrowseServiceServer) ListAll(context.Context, *ListDirectoryRequest) (*ListAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAll not implemented")
}
func (UnimplementedBrowseServiceServer) mustEmbedUnimplementedBrowseServiceServer() {}
func (UnimplementedBrowseServiceServer) testEmbeddedByValue()                       {}

// UnsafeBrowseServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BrowseServiceServer will
// result in compilation errors.
type UnsafeBrowseServiceServer interface {
	mustEmbedUnimplementedBrowseServiceServer()
}

func RegisterBrowseServiceServer(s grpc.ServiceRegistrar, srv BrowseServiceServer) {
	// If the following call panics, it indicates UnimplementedBrowseServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BrowseService_ServiceDesc, srv)
}

func _BrowseService_ListDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowseServiceServer).ListDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrowseService_ListDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrowseServiceServer).ListDirectory(ctx, req.(*ListDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BrowseService_ListAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BrowseServiceServer).ListAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BrowseService_ListAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BrowseServiceServer).ListAll(ctx, req.(*ListDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BrowseService_ServiceDesc is the grpc.ServiceDesc for BrowseService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BrowseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.BrowseService",
	HandlerType: (*BrowseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListDirectory",
			Handler:    _BrowseService_ListDirectory_Handler,
		},
		{
			MethodName: "ListAll",
			Handler:    _BrowseService_ListAll_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	SystemService_GetStats_FullMethodName = "/rockbox.v1.SystemService/GetStats"
	SystemService_GetLogs_FullMethodName  = "/rockbox.v1.SystemService/GetLogs"
)

// SystemServiceClient is the client API for SystemService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SystemServiceClient interface {
	GetStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Stats, error)
	GetLogs(ctx context.Context, in *LogsRequest, opts ...grpc.CallOption) (*LogsResponse, error)
}

type systemServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSystemServiceClient(cc grpc.ClientConnInterface) SystemServiceClient {
	return &systemServiceClient{cc}
}

func (c *systemServiceClient) GetStats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Stats, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Stats)
	err := c.cc.Invoke(ctx, SystemService_GetStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *systemServiceClient) GetLogs(ctx context.Context, in *LogsRequest, opts ...grpc.CallOption) (*LogsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LogsResponse)
	err := c.cc.Invoke(ctx, SystemService_GetLogs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SystemServiceServer is the server API for SystemService service.
// All implementations must embed UnimplementedSystemServiceServer
// for forward compatibility.
type SystemServiceServer interface {
	GetStats(context.Context, *Empty) (*Stats, error)
	GetLogs(context.Context, *LogsRequest) (*LogsResponse, error)
	mustEmbedUnimplementedSystemServiceServer()
}

// UnimplementedSystemServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSystemServiceServer struct{}

func (UnimplementedSystemServiceServer) GetStats(context.Context, *Empty) (*Stats, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedSystemServiceServer) GetLogs(context.Context, *LogsRequest) (*LogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLogs not implemented")
}
func (UnimplementedSystemServiceServer) mustEmbedUnimplementedSystemServiceServer() {}
func (UnimplementedSystemServiceServer) testEmbeddedByValue()                       {}

// UnsafeSystemServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SystemServiceServer will
// result in compilation errors.
type UnsafeSystemServiceServer interface {
	mustEmbedUnimplementedSystemServiceServer()
}

func RegisterSystemServiceServer(s grpc.ServiceRegistrar, srv SystemServiceServer) {
	// If the following call panics, it indicates UnimplementedSystemServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SystemService_ServiceDesc, srv)
}

func _SystemService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SystemServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SystemService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SystemServiceServer).GetStats(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _SystemService_GetLogs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LogsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SystemServiceServer).GetLogs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SystemService_GetLogs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SystemServiceServer).GetLogs(ctx, req.(*LogsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SystemService_ServiceDesc is the grpc.ServiceDesc for SystemService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SystemService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.SystemService",
	HandlerType: (*SystemServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStats",
			Handler:    _SystemService_GetStats_Handler,
		},
		{
			MethodName: "GetLogs",
			Handler:    _SystemService_GetLogs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}

const (
	DeviceService_GetDevice_FullMethodName = "/rockbox.v1.DeviceService/GetDevice"
	DeviceService_ListPeers_FullMethodName = "/rockbox.v1.DeviceService/ListPeers"
)

// DeviceServiceClient is the client API for DeviceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DeviceServiceClient interface {
	GetDevice(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Device, error)
	ListPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPeersResponse, error)
}

type deviceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDeviceServiceClient(cc grpc.ClientConnInterface) DeviceServiceClient {
	return &deviceServiceClient{cc}
}

func (c *deviceServiceClient) GetDevice(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Device, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Device)
	err := c.cc.Invoke(ctx, DeviceService_GetDevice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceServiceClient) ListPeers(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListPeersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPeersResponse)
	err := c.cc.Invoke(ctx, DeviceService_ListPeers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeviceServiceServer is the server API for DeviceService service.
// All implementations must embed UnimplementedDeviceServiceServer
// for forward compatibility.
type DeviceServiceServer interface {
	GetDevice(context.Context, *Empty) (*Device, error)
	ListPeers(context.Context, *Empty) (*ListPeersResponse, error)
	mustEmbedUnimplementedDeviceServiceServer()
}

// UnimplementedDeviceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDeviceServiceServer struct{}

func (UnimplementedDeviceServiceServer) GetDevice(context.Context, *Empty) (*Device, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDevice not implemented")
}
func (UnimplementedDeviceServiceServer) ListPeers(context.Context, *Empty) (*ListPeersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPeers not implemented")
}
func (UnimplementedDeviceServiceServer) mustEmbedUnimplementedDeviceServiceServer() {}
func (UnimplementedDeviceServiceServer) testEmbeddedByValue()                       {}

// UnsafeDeviceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DeviceServiceServer will
// result in compilation errors.
type UnsafeDeviceServiceServer interface {
	mustEmbedUnimplementedDeviceServiceServer()
}

func RegisterDeviceServiceServer(s grpc.ServiceRegistrar, srv DeviceServiceServer) {
	// If the following call panics, it indicates UnimplementedDeviceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DeviceService_ServiceDesc, srv)
}

func _DeviceService_GetDevice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceServiceServer).GetDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceService_GetDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceServiceServer).GetDevice(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceService_ListPeers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceServiceServer).ListPeers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceService_ListPeers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceServiceServer).ListPeers(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// DeviceService_ServiceDesc is the grpc.ServiceDesc for DeviceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DeviceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rockbox.v1.DeviceService",
	HandlerType: (*DeviceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDevice",
			Handler:    _DeviceService_GetDevice_Handler,
		},
		{
			MethodName: "ListPeers",
			Handler:    _DeviceService_ListPeers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rockbox/v1/rockbox.proto",
}
