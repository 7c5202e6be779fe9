// Copyright (C) 2026 Friends Incode
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: rockbox/v1/rockbox.proto

package rockboxv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Track struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Artist        string                 `protobuf:"bytes,4,opt,name=artist,proto3" json:"artist,omitempty"`
	Album         string                 `protobuf:"bytes,5,opt,name=album,proto3" json:"album,omitempty"`
	AlbumArtist   string                 `protobuf:"bytes,6,opt,name=album_artist,json=albumArtist,proto3" json:"album_artist,omitempty"`
	Genre         string                 `protobuf:"bytes,7,opt,name=genre,proto3" json:"genre,omitempty"`
	Year          int32                  `protobuf:"varint,8,opt,name=year,proto3" json:"year,omitempty"`
	TrackNumber   int32                  `protobuf:"varint,9,opt,name=track_number,json=trackNumber,proto3" json:"track_number,omitempty"`
	DiscNumber    int32                  `protobuf:"varint,10,opt,name=disc_number,json=discNumber,proto3" json:"disc_number,omitempty"`
	LengthMs      int32                  `protobuf:"varint,11,opt,name=length_ms,json=lengthMs,proto3" json:"length_ms,omitempty"`
	Bitrate       int32                  `protobuf:"varint,12,opt,name=bitrate,proto3" json:"bitrate,omitempty"`
	Md5           string                 `protobuf:"bytes,13,opt,name=md5,proto3" json:"md5,omitempty"`
	AlbumArt      string                 `protobuf:"bytes,14,opt,name=album_art,json=albumArt,proto3" json:"album_art,omitempty"`
	ArtistId      string                 `protobuf:"bytes,15,opt,name=artist_id,json=artistId,proto3" json:"artist_id,omitempty"`
	AlbumId       string                 `protobuf:"bytes,16,opt,name=album_id,json=albumId,proto3" json:"album_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Track) Reset() {
	*x = Track{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Track) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Track) ProtoMessage() {}

func (x *Track) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Track.ProtoReflect.Descriptor instead.
func (*Track) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{0}
}

func (x *Track) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Track) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *Track) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Track) GetArtist() string {
	if x != nil {
		return x.Artist
	}
	return ""
}

func (x *Track) GetAlbum() string {
	if x != nil {
		return x.Album
	}
	return ""
}

func (x *Track) GetAlbumArtist() string {
	if x != nil {
		return x.AlbumArtist
	}
	return ""
}

func (x *Track) GetGenre() string {
	if x != nil {
		return x.Genre
	}
	return ""
}

func (x *Track) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Track) GetTrackNumber() int32 {
	if x != nil {
		return x.TrackNumber
	}
	return 0
}

func (x *Track) GetDiscNumber() int32 {
	if x != nil {
		return x.DiscNumber
	}
	return 0
}

func (x *Track) GetLengthMs() int32 {
	if x != nil {
		return x.LengthMs
	}
	return 0
}

func (x *Track) GetBitrate() int32 {
	if x != nil {
		return x.Bitrate
	}
	return 0
}

func (x *Track) GetMd5() string {
	if x != nil {
		return x.Md5
	}
	return ""
}

func (x *Track) GetAlbumArt() string {
	if x != nil {
		return x.AlbumArt
	}
	return ""
}

func (x *Track) GetArtistId() string {
	if x != nil {
		return x.ArtistId
	}
	return ""
}

func (x *Track) GetAlbumId() string {
	if x != nil {
		return x.AlbumId
	}
	return ""
}

type Album struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Artist        string                 `protobuf:"bytes,3,opt,name=artist,proto3" json:"artist,omitempty"`
	ArtistId      string                 `protobuf:"bytes,4,opt,name=artist_id,json=artistId,proto3" json:"artist_id,omitempty"`
	Year          int32                  `protobuf:"varint,5,opt,name=year,proto3" json:"year,omitempty"`
	AlbumArt      string                 `protobuf:"bytes,6,opt,name=album_art,json=albumArt,proto3" json:"album_art,omitempty"`
	Md5           string                 `protobuf:"bytes,7,opt,name=md5,proto3" json:"md5,omitempty"`
	Tracks        []*Track               `protobuf:"bytes,8,rep,name=tracks,proto3" json:"tracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Album) Reset() {
	*x = Album{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Album) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Album) ProtoMessage() {}

func (x *Album) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Album.ProtoReflect.Descriptor instead.
func (*Album) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{1}
}

func (x *Album) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Album) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Album) GetArtist() string {
	if x != nil {
		return x.Artist
	}
	return ""
}

func (x *Album) GetArtistId() string {
	if x != nil {
		return x.ArtistId
	}
	return ""
}

func (x *Album) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Album) GetAlbumArt() string {
	if x != nil {
		return x.AlbumArt
	}
	return ""
}

func (x *Album) GetMd5() string {
	if x != nil {
		return x.Md5
	}
	return ""
}

func (x *Album) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

type Artist struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Image         string                 `protobuf:"bytes,3,opt,name=image,proto3" json:"image,omitempty"`
	Tracks        []*Track               `protobuf:"bytes,4,rep,name=tracks,proto3" json:"tracks,omitempty"`
	Albums        []*Album               `protobuf:"bytes,5,rep,name=albums,proto3" json:"albums,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Artist) Reset() {
	*x = Artist{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Artist) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Artist) ProtoMessage() {}

func (x *Artist) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Artist.ProtoReflect.Descriptor instead.
func (*Artist) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{2}
}

func (x *Artist) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Artist) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Artist) GetImage() string {
	if x != nil {
		return x.Image
	}
	return ""
}

func (x *Artist) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

func (x *Artist) GetAlbums() []*Album {
	if x != nil {
		return x.Albums
	}
	return nil
}

type CurrentTrack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Track         *Track                 `protobuf:"bytes,1,opt,name=track,proto3" json:"track,omitempty"`
	ElapsedMs     int32                  `protobuf:"varint,2,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	Index         int32                  `protobuf:"varint,3,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CurrentTrack) Reset() {
	*x = CurrentTrack{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CurrentTrack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CurrentTrack) ProtoMessage() {}

func (x *CurrentTrack) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CurrentTrack.ProtoReflect.Descriptor instead.
func (*CurrentTrack) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{3}
}

func (x *CurrentTrack) GetTrack() *Track {
	if x != nil {
		return x.Track
	}
	return nil
}

func (x *CurrentTrack) GetElapsedMs() int32 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

func (x *CurrentTrack) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

// status uses the engine encoding: 1 playing, 2 paused, 3 stopped.
type PlaybackStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        int32                  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	ElapsedMs     int32                  `protobuf:"varint,2,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaybackStatus) Reset() {
	*x = PlaybackStatus{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaybackStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaybackStatus) ProtoMessage() {}

func (x *PlaybackStatus) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaybackStatus.ProtoReflect.Descriptor instead.
func (*PlaybackStatus) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{4}
}

func (x *PlaybackStatus) GetStatus() int32 {
	if x != nil {
		return x.Status
	}
	return 0
}

func (x *PlaybackStatus) GetElapsedMs() int32 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

type PlaylistSnapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Index         int32                  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Amount        int32                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Tracks        []*Track               `protobuf:"bytes,3,rep,name=tracks,proto3" json:"tracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaylistSnapshot) Reset() {
	*x = PlaylistSnapshot{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaylistSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaylistSnapshot) ProtoMessage() {}

func (x *PlaylistSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaylistSnapshot.ProtoReflect.Descriptor instead.
func (*PlaylistSnapshot) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{5}
}

func (x *PlaylistSnapshot) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

func (x *PlaylistSnapshot) GetAmount() int32 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *PlaylistSnapshot) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

type Empty struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Empty) Reset() {
	*x = Empty{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Empty) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Empty) ProtoMessage() {}

func (x *Empty) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Empty.ProtoReflect.Descriptor instead.
func (*Empty) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{6}
}

type GetAlbumsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Albums        []*Album               `protobuf:"bytes,1,rep,name=albums,proto3" json:"albums,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAlbumsResponse) Reset() {
	*x = GetAlbumsResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAlbumsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAlbumsResponse) ProtoMessage() {}

func (x *GetAlbumsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAlbumsResponse.ProtoReflect.Descriptor instead.
func (*GetAlbumsResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{7}
}

func (x *GetAlbumsResponse) GetAlbums() []*Album {
	if x != nil {
		return x.Albums
	}
	return nil
}

type GetArtistsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Artists       []*Artist              `protobuf:"bytes,1,rep,name=artists,proto3" json:"artists,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArtistsResponse) Reset() {
	*x = GetArtistsResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArtistsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArtistsResponse) ProtoMessage() {}

func (x *GetArtistsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArtistsResponse.ProtoReflect.Descriptor instead.
func (*GetArtistsResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{8}
}

func (x *GetArtistsResponse) GetArtists() []*Artist {
	if x != nil {
		return x.Artists
	}
	return nil
}

type GetTracksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tracks        []*Track               `protobuf:"bytes,1,rep,name=tracks,proto3" json:"tracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTracksResponse) Reset() {
	*x = GetTracksResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTracksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTracksResponse) ProtoMessage() {}

func (x *GetTracksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTracksResponse.ProtoReflect.Descriptor instead.
func (*GetTracksResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{9}
}

func (x *GetTracksResponse) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

type IdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IdRequest) Reset() {
	*x = IdRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IdRequest) ProtoMessage() {}

func (x *IdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IdRequest.ProtoReflect.Descriptor instead.
func (*IdRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{10}
}

func (x *IdRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type SearchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Term          string                 `protobuf:"bytes,1,opt,name=term,proto3" json:"term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchRequest) Reset() {
	*x = SearchRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRequest) ProtoMessage() {}

func (x *SearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRequest.ProtoReflect.Descriptor instead.
func (*SearchRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{11}
}

func (x *SearchRequest) GetTerm() string {
	if x != nil {
		return x.Term
	}
	return ""
}

type SearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Albums        []*Album               `protobuf:"bytes,1,rep,name=albums,proto3" json:"albums,omitempty"`
	Artists       []*Artist              `protobuf:"bytes,2,rep,name=artists,proto3" json:"artists,omitempty"`
	Tracks        []*Track               `protobuf:"bytes,3,rep,name=tracks,proto3" json:"tracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchResponse) Reset() {
	*x = SearchResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchResponse) ProtoMessage() {}

func (x *SearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchResponse.ProtoReflect.Descriptor instead.
func (*SearchResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{12}
}

func (x *SearchResponse) GetAlbums() []*Album {
	if x != nil {
		return x.Albums
	}
	return nil
}

func (x *SearchResponse) GetArtists() []*Artist {
	if x != nil {
		return x.Artists
	}
	return nil
}

func (x *SearchResponse) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

type ScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanRequest) Reset() {
	*x = ScanRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanRequest) ProtoMessage() {}

func (x *ScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanRequest.ProtoReflect.Descriptor instead.
func (*ScanRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{13}
}

func (x *ScanRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Skipped       int32                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanResponse) Reset() {
	*x = ScanResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanResponse) ProtoMessage() {}

func (x *ScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanResponse.ProtoReflect.Descriptor instead.
func (*ScanResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{14}
}

func (x *ScanResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ScanResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

type PlayRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ElapsedMs     int32                  `protobuf:"varint,1,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayRequest) Reset() {
	*x = PlayRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayRequest) ProtoMessage() {}

func (x *PlayRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayRequest.ProtoReflect.Descriptor instead.
func (*PlayRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{15}
}

func (x *PlayRequest) GetElapsedMs() int32 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

func (x *PlayRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type SeekRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionMs    int32                  `protobuf:"varint,1,opt,name=position_ms,json=positionMs,proto3" json:"position_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SeekRequest) Reset() {
	*x = SeekRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SeekRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SeekRequest) ProtoMessage() {}

func (x *SeekRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SeekRequest.ProtoReflect.Descriptor instead.
func (*SeekRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{16}
}

func (x *SeekRequest) GetPositionMs() int32 {
	if x != nil {
		return x.PositionMs
	}
	return 0
}

type PlaySelectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Shuffle       bool                   `protobuf:"varint,2,opt,name=shuffle,proto3" json:"shuffle,omitempty"`
	Position      *int32                 `protobuf:"varint,3,opt,name=position,proto3,oneof" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlaySelectionRequest) Reset() {
	*x = PlaySelectionRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlaySelectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlaySelectionRequest) ProtoMessage() {}

func (x *PlaySelectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlaySelectionRequest.ProtoReflect.Descriptor instead.
func (*PlaySelectionRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{17}
}

func (x *PlaySelectionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PlaySelectionRequest) GetShuffle() bool {
	if x != nil {
		return x.Shuffle
	}
	return false
}

func (x *PlaySelectionRequest) GetPosition() int32 {
	if x != nil && x.Position != nil {
		return *x.Position
	}
	return 0
}

type PlayDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Recurse       bool                   `protobuf:"varint,2,opt,name=recurse,proto3" json:"recurse,omitempty"`
	Shuffle       bool                   `protobuf:"varint,3,opt,name=shuffle,proto3" json:"shuffle,omitempty"`
	Position      *int32                 `protobuf:"varint,4,opt,name=position,proto3,oneof" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayDirectoryRequest) Reset() {
	*x = PlayDirectoryRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayDirectoryRequest) ProtoMessage() {}

func (x *PlayDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayDirectoryRequest.ProtoReflect.Descriptor instead.
func (*PlayDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{18}
}

func (x *PlayDirectoryRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *PlayDirectoryRequest) GetRecurse() bool {
	if x != nil {
		return x.Recurse
	}
	return false
}

func (x *PlayDirectoryRequest) GetShuffle() bool {
	if x != nil {
		return x.Shuffle
	}
	return false
}

func (x *PlayDirectoryRequest) GetPosition() int32 {
	if x != nil && x.Position != nil {
		return *x.Position
	}
	return 0
}

type PlayTrackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlayTrackRequest) Reset() {
	*x = PlayTrackRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlayTrackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayTrackRequest) ProtoMessage() {}

func (x *PlayTrackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayTrackRequest.ProtoReflect.Descriptor instead.
func (*PlayTrackRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{19}
}

func (x *PlayTrackRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type GetFilePositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PositionMs    int32                  `protobuf:"varint,1,opt,name=position_ms,json=positionMs,proto3" json:"position_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilePositionResponse) Reset() {
	*x = GetFilePositionResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilePositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilePositionResponse) ProtoMessage() {}

func (x *GetFilePositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilePositionResponse.ProtoReflect.Descriptor instead.
func (*GetFilePositionResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{20}
}

func (x *GetFilePositionResponse) GetPositionMs() int32 {
	if x != nil {
		return x.PositionMs
	}
	return 0
}

type CreatePlaylistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	FolderId      *string                `protobuf:"bytes,2,opt,name=folder_id,json=folderId,proto3,oneof" json:"folder_id,omitempty"`
	Description   *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePlaylistRequest) Reset() {
	*x = CreatePlaylistRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePlaylistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePlaylistRequest) ProtoMessage() {}

func (x *CreatePlaylistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePlaylistRequest.ProtoReflect.Descriptor instead.
func (*CreatePlaylistRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{21}
}

func (x *CreatePlaylistRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreatePlaylistRequest) GetFolderId() string {
	if x != nil && x.FolderId != nil {
		return *x.FolderId
	}
	return ""
}

func (x *CreatePlaylistRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

type CreatePlaylistResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePlaylistResponse) Reset() {
	*x = CreatePlaylistResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePlaylistResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePlaylistResponse) ProtoMessage() {}

func (x *CreatePlaylistResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePlaylistResponse.ProtoReflect.Descriptor instead.
func (*CreatePlaylistResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{22}
}

func (x *CreatePlaylistResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type Playlist struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	FolderId      *string                `protobuf:"bytes,3,opt,name=folder_id,json=folderId,proto3,oneof" json:"folder_id,omitempty"`
	Description   *string                `protobuf:"bytes,4,opt,name=description,proto3,oneof" json:"description,omitempty"`
	Tracks        []*Track               `protobuf:"bytes,5,rep,name=tracks,proto3" json:"tracks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Playlist) Reset() {
	*x = Playlist{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Playlist) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Playlist) ProtoMessage() {}

func (x *Playlist) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Playlist.ProtoReflect.Descriptor instead.
func (*Playlist) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{23}
}

func (x *Playlist) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Playlist) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Playlist) GetFolderId() string {
	if x != nil && x.FolderId != nil {
		return *x.FolderId
	}
	return ""
}

func (x *Playlist) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *Playlist) GetTracks() []*Track {
	if x != nil {
		return x.Tracks
	}
	return nil
}

type ListPlaylistsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Playlists     []*Playlist            `protobuf:"bytes,1,rep,name=playlists,proto3" json:"playlists,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlaylistsResponse) Reset() {
	*x = ListPlaylistsResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlaylistsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlaylistsResponse) ProtoMessage() {}

func (x *ListPlaylistsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlaylistsResponse.ProtoReflect.Descriptor instead.
func (*ListPlaylistsResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{24}
}

func (x *ListPlaylistsResponse) GetPlaylists() []*Playlist {
	if x != nil {
		return x.Playlists
	}
	return nil
}

type RenamePlaylistRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenamePlaylistRequest) Reset() {
	*x = RenamePlaylistRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenamePlaylistRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenamePlaylistRequest) ProtoMessage() {}

func (x *RenamePlaylistRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenamePlaylistRequest.ProtoReflect.Descriptor instead.
func (*RenamePlaylistRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{25}
}

func (x *RenamePlaylistRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RenamePlaylistRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type InsertPlaylistTracksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TrackIds      []string               `protobuf:"bytes,2,rep,name=track_ids,json=trackIds,proto3" json:"track_ids,omitempty"`
	Position      int32                  `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InsertPlaylistTracksRequest) Reset() {
	*x = InsertPlaylistTracksRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InsertPlaylistTracksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InsertPlaylistTracksRequest) ProtoMessage() {}

func (x *InsertPlaylistTracksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InsertPlaylistTracksRequest.ProtoReflect.Descriptor instead.
func (*InsertPlaylistTracksRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{26}
}

func (x *InsertPlaylistTracksRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InsertPlaylistTracksRequest) GetTrackIds() []string {
	if x != nil {
		return x.TrackIds
	}
	return nil
}

func (x *InsertPlaylistTracksRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type RemovePlaylistTrackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Position      int32                  `protobuf:"varint,2,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemovePlaylistTrackRequest) Reset() {
	*x = RemovePlaylistTrackRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemovePlaylistTrackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemovePlaylistTrackRequest) ProtoMessage() {}

func (x *RemovePlaylistTrackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemovePlaylistTrackRequest.ProtoReflect.Descriptor instead.
func (*RemovePlaylistTrackRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{27}
}

func (x *RemovePlaylistTrackRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RemovePlaylistTrackRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type ShuffleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seed          int32                  `protobuf:"varint,1,opt,name=seed,proto3" json:"seed,omitempty"`
	StartIndex    int32                  `protobuf:"varint,2,opt,name=start_index,json=startIndex,proto3" json:"start_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShuffleRequest) Reset() {
	*x = ShuffleRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShuffleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShuffleRequest) ProtoMessage() {}

func (x *ShuffleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShuffleRequest.ProtoReflect.Descriptor instead.
func (*ShuffleRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{28}
}

func (x *ShuffleRequest) GetSeed() int32 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *ShuffleRequest) GetStartIndex() int32 {
	if x != nil {
		return x.StartIndex
	}
	return 0
}

type CreateFolderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	ParentId      *string                `protobuf:"bytes,2,opt,name=parent_id,json=parentId,proto3,oneof" json:"parent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFolderRequest) Reset() {
	*x = CreateFolderRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFolderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFolderRequest) ProtoMessage() {}

func (x *CreateFolderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFolderRequest.ProtoReflect.Descriptor instead.
func (*CreateFolderRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{29}
}

func (x *CreateFolderRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFolderRequest) GetParentId() string {
	if x != nil && x.ParentId != nil {
		return *x.ParentId
	}
	return ""
}

type Folder struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ParentId      *string                `protobuf:"bytes,3,opt,name=parent_id,json=parentId,proto3,oneof" json:"parent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Folder) Reset() {
	*x = Folder{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Folder) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Folder) ProtoMessage() {}

func (x *Folder) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Folder.ProtoReflect.Descriptor instead.
func (*Folder) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{30}
}

func (x *Folder) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Folder) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Folder) GetParentId() string {
	if x != nil && x.ParentId != nil {
		return *x.ParentId
	}
	return ""
}

type ListFoldersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Folders       []*Folder              `protobuf:"bytes,1,rep,name=folders,proto3" json:"folders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFoldersResponse) Reset() {
	*x = ListFoldersResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFoldersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFoldersResponse) ProtoMessage() {}

func (x *ListFoldersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFoldersResponse.ProtoReflect.Descriptor instead.
func (*ListFoldersResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{31}
}

func (x *ListFoldersResponse) GetFolders() []*Folder {
	if x != nil {
		return x.Folders
	}
	return nil
}

type Volume struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Db            int32                  `protobuf:"varint,1,opt,name=db,proto3" json:"db,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Volume) Reset() {
	*x = Volume{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Volume) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Volume) ProtoMessage() {}

func (x *Volume) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Volume.ProtoReflect.Descriptor instead.
func (*Volume) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{32}
}

func (x *Volume) GetDb() int32 {
	if x != nil {
		return x.Db
	}
	return 0
}

type AdjustVolumeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Steps         int32                  `protobuf:"varint,1,opt,name=steps,proto3" json:"steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdjustVolumeRequest) Reset() {
	*x = AdjustVolumeRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdjustVolumeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdjustVolumeRequest) ProtoMessage() {}

func (x *AdjustVolumeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdjustVolumeRequest.ProtoReflect.Descriptor instead.
func (*AdjustVolumeRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{33}
}

func (x *AdjustVolumeRequest) GetSteps() int32 {
	if x != nil {
		return x.Steps
	}
	return 0
}

type EqBand struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cutoff        int32                  `protobuf:"varint,1,opt,name=cutoff,proto3" json:"cutoff,omitempty"`
	Q             float64                `protobuf:"fixed64,2,opt,name=q,proto3" json:"q,omitempty"`
	Gain          float64                `protobuf:"fixed64,3,opt,name=gain,proto3" json:"gain,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EqBand) Reset() {
	*x = EqBand{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EqBand) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EqBand) ProtoMessage() {}

func (x *EqBand) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EqBand.ProtoReflect.Descriptor instead.
func (*EqBand) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{34}
}

func (x *EqBand) GetCutoff() int32 {
	if x != nil {
		return x.Cutoff
	}
	return 0
}

func (x *EqBand) GetQ() float64 {
	if x != nil {
		return x.Q
	}
	return 0
}

func (x *EqBand) GetGain() float64 {
	if x != nil {
		return x.Gain
	}
	return 0
}

type Settings struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Volume            int32                  `protobuf:"varint,1,opt,name=volume,proto3" json:"volume,omitempty"`
	Bass              int32                  `protobuf:"varint,2,opt,name=bass,proto3" json:"bass,omitempty"`
	Treble            int32                  `protobuf:"varint,3,opt,name=treble,proto3" json:"treble,omitempty"`
	Balance           int32                  `protobuf:"varint,4,opt,name=balance,proto3" json:"balance,omitempty"`
	Repeat            int32                  `protobuf:"varint,5,opt,name=repeat,proto3" json:"repeat,omitempty"`
	Shuffle           bool                   `protobuf:"varint,6,opt,name=shuffle,proto3" json:"shuffle,omitempty"`
	Single            bool                   `protobuf:"varint,7,opt,name=single,proto3" json:"single,omitempty"`
	FadeOnStop        bool                   `protobuf:"varint,8,opt,name=fade_on_stop,json=fadeOnStop,proto3" json:"fade_on_stop,omitempty"`
	CrossfadeMs       int32                  `protobuf:"varint,9,opt,name=crossfade_ms,json=crossfadeMs,proto3" json:"crossfade_ms,omitempty"`
	EqEnabled         bool                   `protobuf:"varint,10,opt,name=eq_enabled,json=eqEnabled,proto3" json:"eq_enabled,omitempty"`
	EqBands           []*EqBand              `protobuf:"bytes,11,rep,name=eq_bands,json=eqBands,proto3" json:"eq_bands,omitempty"`
	PartyMode         bool                   `protobuf:"varint,12,opt,name=party_mode,json=partyMode,proto3" json:"party_mode,omitempty"`
	ReplaygainEnabled bool                   `protobuf:"varint,13,opt,name=replaygain_enabled,json=replaygainEnabled,proto3" json:"replaygain_enabled,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Settings) Reset() {
	*x = Settings{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Settings) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Settings) ProtoMessage() {}

func (x *Settings) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Settings.ProtoReflect.Descriptor instead.
func (*Settings) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{35}
}

func (x *Settings) GetVolume() int32 {
	if x != nil {
		return x.Volume
	}
	return 0
}

func (x *Settings) GetBass() int32 {
	if x != nil {
		return x.Bass
	}
	return 0
}

func (x *Settings) GetTreble() int32 {
	if x != nil {
		return x.Treble
	}
	return 0
}

func (x *Settings) GetBalance() int32 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *Settings) GetRepeat() int32 {
	if x != nil {
		return x.Repeat
	}
	return 0
}

func (x *Settings) GetShuffle() bool {
	if x != nil {
		return x.Shuffle
	}
	return false
}

func (x *Settings) GetSingle() bool {
	if x != nil {
		return x.Single
	}
	return false
}

func (x *Settings) GetFadeOnStop() bool {
	if x != nil {
		return x.FadeOnStop
	}
	return false
}

func (x *Settings) GetCrossfadeMs() int32 {
	if x != nil {
		return x.CrossfadeMs
	}
	return 0
}

func (x *Settings) GetEqEnabled() bool {
	if x != nil {
		return x.EqEnabled
	}
	return false
}

func (x *Settings) GetEqBands() []*EqBand {
	if x != nil {
		return x.EqBands
	}
	return nil
}

func (x *Settings) GetPartyMode() bool {
	if x != nil {
		return x.PartyMode
	}
	return false
}

func (x *Settings) GetReplaygainEnabled() bool {
	if x != nil {
		return x.ReplaygainEnabled
	}
	return false
}

type ListDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDirectoryRequest) Reset() {
	*x = ListDirectoryRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDirectoryRequest) ProtoMessage() {}

func (x *ListDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ListDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{36}
}

func (x *ListDirectoryRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type DirectoryEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	IsDir         bool                   `protobuf:"varint,3,opt,name=is_dir,json=isDir,proto3" json:"is_dir,omitempty"`
	Size          int64                  `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	ModTime       int64                  `protobuf:"varint,5,opt,name=mod_time,json=modTime,proto3" json:"mod_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DirectoryEntry) Reset() {
	*x = DirectoryEntry{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DirectoryEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DirectoryEntry) ProtoMessage() {}

func (x *DirectoryEntry) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DirectoryEntry.ProtoReflect.Descriptor instead.
func (*DirectoryEntry) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{37}
}

func (x *DirectoryEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DirectoryEntry) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *DirectoryEntry) GetIsDir() bool {
	if x != nil {
		return x.IsDir
	}
	return false
}

func (x *DirectoryEntry) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *DirectoryEntry) GetModTime() int64 {
	if x != nil {
		return x.ModTime
	}
	return 0
}

type ListDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*DirectoryEntry      `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDirectoryResponse) Reset() {
	*x = ListDirectoryResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDirectoryResponse) ProtoMessage() {}

func (x *ListDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ListDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{38}
}

func (x *ListDirectoryResponse) GetEntries() []*DirectoryEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ListAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Files         []string               `protobuf:"bytes,1,rep,name=files,proto3" json:"files,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAllResponse) Reset() {
	*x = ListAllResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAllResponse) ProtoMessage() {}

func (x *ListAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAllResponse.ProtoReflect.Descriptor instead.
func (*ListAllResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{39}
}

func (x *ListAllResponse) GetFiles() []string {
	if x != nil {
		return x.Files
	}
	return nil
}

type Stats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Artists       int64                  `protobuf:"varint,1,opt,name=artists,proto3" json:"artists,omitempty"`
	Albums        int64                  `protobuf:"varint,2,opt,name=albums,proto3" json:"albums,omitempty"`
	Tracks        int64                  `protobuf:"varint,3,opt,name=tracks,proto3" json:"tracks,omitempty"`
	TotalLengthMs int64                  `protobuf:"varint,4,opt,name=total_length_ms,json=totalLengthMs,proto3" json:"total_length_ms,omitempty"`
	UptimeSeconds int64                  `protobuf:"varint,5,opt,name=uptime_seconds,json=uptimeSeconds,proto3" json:"uptime_seconds,omitempty"`
	Version       string                 `protobuf:"bytes,6,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Stats) Reset() {
	*x = Stats{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Stats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Stats) ProtoMessage() {}

func (x *Stats) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Stats.ProtoReflect.Descriptor instead.
func (*Stats) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{40}
}

func (x *Stats) GetArtists() int64 {
	if x != nil {
		return x.Artists
	}
	return 0
}

func (x *Stats) GetAlbums() int64 {
	if x != nil {
		return x.Albums
	}
	return 0
}

func (x *Stats) GetTracks() int64 {
	if x != nil {
		return x.Tracks
	}
	return 0
}

func (x *Stats) GetTotalLengthMs() int64 {
	if x != nil {
		return x.TotalLengthMs
	}
	return 0
}

func (x *Stats) GetUptimeSeconds() int64 {
	if x != nil {
		return x.UptimeSeconds
	}
	return 0
}

func (x *Stats) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type LogsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tail          int32                  `protobuf:"varint,1,opt,name=tail,proto3" json:"tail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogsRequest) Reset() {
	*x = LogsRequest{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogsRequest) ProtoMessage() {}

func (x *LogsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogsRequest.ProtoReflect.Descriptor instead.
func (*LogsRequest) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{41}
}

func (x *LogsRequest) GetTail() int32 {
	if x != nil {
		return x.Tail
	}
	return 0
}

type LogEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Timestamp     string                 `protobuf:"bytes,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Level         string                 `protobuf:"bytes,2,opt,name=level,proto3" json:"level,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Component     string                 `protobuf:"bytes,4,opt,name=component,proto3" json:"component,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogEntry) Reset() {
	*x = LogEntry{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogEntry) ProtoMessage() {}

func (x *LogEntry) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogEntry.ProtoReflect.Descriptor instead.
func (*LogEntry) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{42}
}

func (x *LogEntry) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *LogEntry) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *LogEntry) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *LogEntry) GetComponent() string {
	if x != nil {
		return x.Component
	}
	return ""
}

type LogsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*LogEntry            `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LogsResponse) Reset() {
	*x = LogsResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LogsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LogsResponse) ProtoMessage() {}

func (x *LogsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LogsResponse.ProtoReflect.Descriptor instead.
func (*LogsResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{43}
}

func (x *LogsResponse) GetEntries() []*LogEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type Device struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Version       string                 `protobuf:"bytes,3,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Device) Reset() {
	*x = Device{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Device) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Device) ProtoMessage() {}

func (x *Device) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Device.ProtoReflect.Descriptor instead.
func (*Device) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{44}
}

func (x *Device) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Device) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Device) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type Peer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Host          string                 `protobuf:"bytes,2,opt,name=host,proto3" json:"host,omitempty"`
	Port          int32                  `protobuf:"varint,3,opt,name=port,proto3" json:"port,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Peer) Reset() {
	*x = Peer{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Peer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Peer) ProtoMessage() {}

func (x *Peer) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Peer.ProtoReflect.Descriptor instead.
func (*Peer) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{45}
}

func (x *Peer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Peer) GetHost() string {
	if x != nil {
		return x.Host
	}
	return ""
}

func (x *Peer) GetPort() int32 {
	if x != nil {
		return x.Port
	}
	return 0
}

func (x *Peer) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

type ListPeersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Peers         []*Peer                `protobuf:"bytes,1,rep,name=peers,proto3" json:"peers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPeersResponse) Reset() {
	*x = ListPeersResponse{}
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPeersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPeersResponse) ProtoMessage() {}

func (x *ListPeersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_rockbox_v1_rockbox_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPeersResponse.ProtoReflect.Descriptor instead.
func (*ListPeersResponse) Descriptor() ([]byte, []int) {
	return file_rockbox_v1_rockbox_proto_rawDescGZIP(), []int{46}
}

func (x *ListPeersResponse) GetPeers() []*Peer {
	if x != nil {
		return x.Peers
	}
	return nil
}

var File_rockbox_v1_rockbox_proto protoreflect.FileDescriptor

const file_rockbox_v1_rockbox_proto_rawDesc = "" +
	"\n" +
	"\x18rockbox/v1/rockbox.proto\x12\n" +
	"rockbox.v1\"\x9e\x03\n" +
	"\x05Track\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x16\n" +
	"\x06artist\x18\x04 \x01(\tR\x06artist\x12\x14\n" +
	"\x05album\x18\x05 \x01(\tR\x05album\x12!\n" +
	"\falbum_artist\x18\x06 \x01(\tR\valbumArtist\x12\x14\n" +
	"\x05genre\x18\a \x01(\tR\x05genre\x12\x12\n" +
	"\x04year\x18\b \x01(\x05R\x04year\x12!\n" +
	"\ftrack_number\x18\t \x01(\x05R\vtrackNumber\x12\x1f\n" +
	"\vdisc_number\x18\n" +
	" \x01(\x05R\n" +
	"discNumber\x12\x1b\n" +
	"\tlength_ms\x18\v \x01(\x05R\blengthMs\x12\x18\n" +
	"\abitrate\x18\f \x01(\x05R\abitrate\x12\x10\n" +
	"\x03md5\x18\r \x01(\tR\x03md5\x12\x1b\n" +
	"\talbum_art\x18\x0e \x01(\tR\balbumArt\x12\x1b\n" +
	"\tartist_id\x18\x0f \x01(\tR\bartistId\x12\x19\n" +
	"\balbum_id\x18\x10 \x01(\tR\aalbumId\"\xd0\x01\n" +
	"\x05Album\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06artist\x18\x03 \x01(\tR\x06artist\x12\x1b\n" +
	"\tartist_id\x18\x04 \x01(\tR\bartistId\x12\x12\n" +
	"\x04year\x18\x05 \x01(\x05R\x04year\x12\x1b\n" +
	"\talbum_art\x18\x06 \x01(\tR\balbumArt\x12\x10\n" +
	"\x03md5\x18\a \x01(\tR\x03md5\x12)\n" +
	"\x06tracks\x18\b \x03(\v2\x11.rockbox.v1.TrackR\x06tracks\"\x98\x01\n" +
	"\x06Artist\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05image\x18\x03 \x01(\tR\x05image\x12)\n" +
	"\x06tracks\x18\x04 \x03(\v2\x11.rockbox.v1.TrackR\x06tracks\x12)\n" +
	"\x06albums\x18\x05 \x03(\v2\x11.rockbox.v1.AlbumR\x06albums\"l\n" +
	"\fCurrentTrack\x12'\n" +
	"\x05track\x18\x01 \x01(\v2\x11.rockbox.v1.TrackR\x05track\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x02 \x01(\x05R\telapsedMs\x12\x14\n" +
	"\x05index\x18\x03 \x01(\x05R\x05index\"G\n" +
	"\x0ePlaybackStatus\x12\x16\n" +
	"\x06status\x18\x01 \x01(\x05R\x06status\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x02 \x01(\x05R\telapsedMs\"k\n" +
	"\x10PlaylistSnapshot\x12\x14\n" +
	"\x05index\x18\x01 \x01(\x05R\x05index\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x05R\x06amount\x12)\n" +
	"\x06tracks\x18\x03 \x03(\v2\x11.rockbox.v1.TrackR\x06tracks\"\a\n" +
	"\x05Empty\">\n" +
	"\x11GetAlbumsResponse\x12)\n" +
	"\x06albums\x18\x01 \x03(\v2\x11.rockbox.v1.AlbumR\x06albums\"B\n" +
	"\x12GetArtistsResponse\x12,\n" +
	"\aartists\x18\x01 \x03(\v2\x12.rockbox.v1.ArtistR\aartists\">\n" +
	"\x11GetTracksResponse\x12)\n" +
	"\x06tracks\x18\x01 \x03(\v2\x11.rockbox.v1.TrackR\x06tracks\"\x1b\n" +
	"\tIdRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"#\n" +
	"\rSearchRequest\x12\x12\n" +
	"\x04term\x18\x01 \x01(\tR\x04term\"\x94\x01\n" +
	"\x0eSearchResponse\x12)\n" +
	"\x06albums\x18\x01 \x03(\v2\x11.rockbox.v1.AlbumR\x06albums\x12,\n" +
	"\aartists\x18\x02 \x03(\v2\x12.rockbox.v1.ArtistR\aartists\x12)\n" +
	"\x06tracks\x18\x03 \x03(\v2\x11.rockbox.v1.TrackR\x06tracks\"!\n" +
	"\vScanRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"B\n" +
	"\fScanResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x18\n" +
	"\askipped\x18\x02 \x01(\x05R\askipped\"D\n" +
	"\vPlayRequest\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x01 \x01(\x05R\telapsedMs\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\".\n" +
	"\vSeekRequest\x12\x1f\n" +
	"\vposition_ms\x18\x01 \x01(\x05R\n" +
	"positionMs\"n\n" +
	"\x14PlaySelectionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\ashuffle\x18\x02 \x01(\bR\ashuffle\x12\x1f\n" +
	"\bposition\x18\x03 \x01(\x05H\x00R\bposition\x88\x01\x01B\v\n" +
	"\t_position\"\x8c\x01\n" +
	"\x14PlayDirectoryRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x18\n" +
	"\arecurse\x18\x02 \x01(\bR\arecurse\x12\x18\n" +
	"\ashuffle\x18\x03 \x01(\bR\ashuffle\x12\x1f\n" +
	"\bposition\x18\x04 \x01(\x05H\x00R\bposition\x88\x01\x01B\v\n" +
	"\t_position\"&\n" +
	"\x10PlayTrackRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\":\n" +
	"\x17GetFilePositionResponse\x12\x1f\n" +
	"\vposition_ms\x18\x01 \x01(\x05R\n" +
	"positionMs\"\x92\x01\n" +
	"\x15CreatePlaylistRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\tfolder_id\x18\x02 \x01(\tH\x00R\bfolderId\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01B\f\n" +
	"\n" +
	"_folder_idB\x0e\n" +
	"\f_description\"(\n" +
	"\x16CreatePlaylistResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xc0\x01\n" +
	"\bPlaylist\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\tfolder_id\x18\x03 \x01(\tH\x00R\bfolderId\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x04 \x01(\tH\x01R\vdescription\x88\x01\x01\x12)\n" +
	"\x06tracks\x18\x05 \x03(\v2\x11.rockbox.v1.TrackR\x06tracksB\f\n" +
	"\n" +
	"_folder_idB\x0e\n" +
	"\f_description\"K\n" +
	"\x15ListPlaylistsResponse\x122\n" +
	"\tplaylists\x18\x01 \x03(\v2\x14.rockbox.v1.PlaylistR\tplaylists\";\n" +
	"\x15RenamePlaylistRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"f\n" +
	"\x1bInsertPlaylistTracksRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttrack_ids\x18\x02 \x03(\tR\btrackIds\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\x05R\bposition\"H\n" +
	"\x1aRemovePlaylistTrackRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bposition\x18\x02 \x01(\x05R\bposition\"E\n" +
	"\x0eShuffleRequest\x12\x12\n" +
	"\x04seed\x18\x01 \x01(\x05R\x04seed\x12\x1f\n" +
	"\vstart_index\x18\x02 \x01(\x05R\n" +
	"startIndex\"Y\n" +
	"\x13CreateFolderRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\tparent_id\x18\x02 \x01(\tH\x00R\bparentId\x88\x01\x01B\f\n" +
	"\n" +
	"_parent_id\"\\\n" +
	"\x06Folder\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\tparent_id\x18\x03 \x01(\tH\x00R\bparentId\x88\x01\x01B\f\n" +
	"\n" +
	"_parent_id\"C\n" +
	"\x13ListFoldersResponse\x12,\n" +
	"\afolders\x18\x01 \x03(\v2\x12.rockbox.v1.FolderR\afolders\"\x18\n" +
	"\x06Volume\x12\x0e\n" +
	"\x02db\x18\x01 \x01(\x05R\x02db\"+\n" +
	"\x13AdjustVolumeRequest\x12\x14\n" +
	"\x05steps\x18\x01 \x01(\x05R\x05steps\"B\n" +
	"\x06EqBand\x12\x16\n" +
	"\x06cutoff\x18\x01 \x01(\x05R\x06cutoff\x12\f\n" +
	"\x01q\x18\x02 \x01(\x01R\x01q\x12\x12\n" +
	"\x04gain\x18\x03 \x01(\x01R\x04gain\"\x93\x03\n" +
	"\bSettings\x12\x16\n" +
	"\x06volume\x18\x01 \x01(\x05R\x06volume\x12\x12\n" +
	"\x04bass\x18\x02 \x01(\x05R\x04bass\x12\x16\n" +
	"\x06treble\x18\x03 \x01(\x05R\x06treble\x12\x18\n" +
	"\abalance\x18\x04 \x01(\x05R\abalance\x12\x16\n" +
	"\x06repeat\x18\x05 \x01(\x05R\x06repeat\x12\x18\n" +
	"\ashuffle\x18\x06 \x01(\bR\ashuffle\x12\x16\n" +
	"\x06single\x18\a \x01(\bR\x06single\x12 \n" +
	"\ffade_on_stop\x18\b \x01(\bR\n" +
	"fadeOnStop\x12!\n" +
	"\fcrossfade_ms\x18\t \x01(\x05R\vcrossfadeMs\x12\x1d\n" +
	"\n" +
	"eq_enabled\x18\n" +
	" \x01(\bR\teqEnabled\x12-\n" +
	"\beq_bands\x18\v \x03(\v2\x12.rockbox.v1.EqBandR\aeqBands\x12\x1d\n" +
	"\n" +
	"party_mode\x18\f \x01(\bR\tpartyMode\x12-\n" +
	"\x12replaygain_enabled\x18\r \x01(\bR\x11replaygainEnabled\"*\n" +
	"\x14ListDirectoryRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"~\n" +
	"\x0eDirectoryEntry\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x15\n" +
	"\x06is_dir\x18\x03 \x01(\bR\x05isDir\x12\x12\n" +
	"\x04size\x18\x04 \x01(\x03R\x04size\x12\x19\n" +
	"\bmod_time\x18\x05 \x01(\x03R\amodTime\"M\n" +
	"\x15ListDirectoryResponse\x124\n" +
	"\aentries\x18\x01 \x03(\v2\x1a.rockbox.v1.DirectoryEntryR\aentries\"'\n" +
	"\x0fListAllResponse\x12\x14\n" +
	"\x05files\x18\x01 \x03(\tR\x05files\"\xba\x01\n" +
	"\x05Stats\x12\x18\n" +
	"\aartists\x18\x01 \x01(\x03R\aartists\x12\x16\n" +
	"\x06albums\x18\x02 \x01(\x03R\x06albums\x12\x16\n" +
	"\x06tracks\x18\x03 \x01(\x03R\x06tracks\x12&\n" +
	"\x0ftotal_length_ms\x18\x04 \x01(\x03R\rtotalLengthMs\x12%\n" +
	"\x0euptime_seconds\x18\x05 \x01(\x03R\ruptimeSeconds\x12\x18\n" +
	"\aversion\x18\x06 \x01(\tR\aversion\"!\n" +
	"\vLogsRequest\x12\x12\n" +
	"\x04tail\x18\x01 \x01(\x05R\x04tail\"v\n" +
	"\bLogEntry\x12\x1c\n" +
	"\ttimestamp\x18\x01 \x01(\tR\ttimestamp\x12\x14\n" +
	"\x05level\x18\x02 \x01(\tR\x05level\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1c\n" +
	"\tcomponent\x18\x04 \x01(\tR\tcomponent\">\n" +
	"\fLogsResponse\x12.\n" +
	"\aentries\x18\x01 \x03(\v2\x14.rockbox.v1.LogEntryR\aentries\"F\n" +
	"\x06Device\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aversion\x18\x03 \x01(\tR\aversion\"V\n" +
	"\x04Peer\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04host\x18\x02 \x01(\tR\x04host\x12\x12\n" +
	"\x04port\x18\x03 \x01(\x05R\x04port\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\";\n" +
	"\x11ListPeersResponse\x12&\n" +
	"\x05peers\x18\x01 \x03(\v2\x10.rockbox.v1.PeerR\x05peers2\x95\a\n" +
	"\x0eLibraryService\x12=\n" +
	"\tGetAlbums\x12\x11.rockbox.v1.Empty\x1a\x1d.rockbox.v1.GetAlbumsResponse\x12?\n" +
	"\n" +
	"GetArtists\x12\x11.rockbox.v1.Empty\x1a\x1e.rockbox.v1.GetArtistsResponse\x12=\n" +
	"\tGetTracks\x12\x11.rockbox.v1.Empty\x1a\x1d.rockbox.v1.GetTracksResponse\x124\n" +
	"\bGetAlbum\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Album\x126\n" +
	"\tGetArtist\x12\x15.rockbox.v1.IdRequest\x1a\x12.rockbox.v1.Artist\x124\n" +
	"\bGetTrack\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Track\x12?\n" +
	"\x06Search\x12\x19.rockbox.v1.SearchRequest\x1a\x1a.rockbox.v1.SearchResponse\x125\n" +
	"\tLikeTrack\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty\x127\n" +
	"\vUnlikeTrack\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty\x125\n" +
	"\tLikeAlbum\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty\x127\n" +
	"\vUnlikeAlbum\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty\x12B\n" +
	"\x0eGetLikedTracks\x12\x11.rockbox.v1.Empty\x1a\x1d.rockbox.v1.GetTracksResponse\x12B\n" +
	"\x0eGetLikedAlbums\x12\x11.rockbox.v1.Empty\x1a\x1d.rockbox.v1.GetAlbumsResponse\x129\n" +
	"\x04Scan\x12\x17.rockbox.v1.ScanRequest\x1a\x18.rockbox.v1.ScanResponse\x12<\n" +
	"\x14FlushAndReloadTracks\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty2\xbf\t\n" +
	"\x0fPlaybackService\x122\n" +
	"\x04Play\x12\x17.rockbox.v1.PlayRequest\x1a\x11.rockbox.v1.Empty\x12-\n" +
	"\x05Pause\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x12.\n" +
	"\x06Resume\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x12,\n" +
	"\x04Stop\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x120\n" +
	"\bHardStop\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x12,\n" +
	"\x04Next\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x120\n" +
	"\bPrevious\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Empty\x122\n" +
	"\x04Seek\x12\x17.rockbox.v1.SeekRequest\x1a\x11.rockbox.v1.Empty\x12:\n" +
	"\tGetStatus\x12\x11.rockbox.v1.Empty\x1a\x1a.rockbox.v1.PlaybackStatus\x12>\n" +
	"\x0fGetCurrentTrack\x12\x11.rockbox.v1.Empty\x1a\x18.rockbox.v1.CurrentTrack\x12;\n" +
	"\fGetNextTrack\x12\x11.rockbox.v1.Empty\x1a\x18.rockbox.v1.CurrentTrack\x12I\n" +
	"\x0fGetFilePosition\x12\x11.rockbox.v1.Empty\x1a#.rockbox.v1.GetFilePositionResponse\x12@\n" +
	"\tPlayAlbum\x12 .rockbox.v1.PlaySelectionRequest\x1a\x11.rockbox.v1.Empty\x12G\n" +
	"\x10PlayArtistTracks\x12 .rockbox.v1.PlaySelectionRequest\x1a\x11.rockbox.v1.Empty\x12D\n" +
	"\rPlayDirectory\x12 .rockbox.v1.PlayDirectoryRequest\x1a\x11.rockbox.v1.Empty\x12<\n" +
	"\tPlayTrack\x12\x1c.rockbox.v1.PlayTrackRequest\x1a\x11.rockbox.v1.Empty\x12F\n" +
	"\x0fPlayLikedTracks\x12 .rockbox.v1.PlaySelectionRequest\x1a\x11.rockbox.v1.Empty\x12D\n" +
	"\rPlayAllTracks\x12 .rockbox.v1.PlaySelectionRequest\x1a\x11.rockbox.v1.Empty\x12C\n" +
	"\x12StreamCurrentTrack\x12\x11.rockbox.v1.Empty\x1a\x18.rockbox.v1.CurrentTrack0\x01\x12?\n" +
	"\fStreamStatus\x12\x11.rockbox.v1.Empty\x1a\x1a.rockbox.v1.PlaybackStatus0\x012\xde\x06\n" +
	"\x0fPlaylistService\x12O\n" +
	"\x06Create\x12!.rockbox.v1.CreatePlaylistRequest\x1a\".rockbox.v1.CreatePlaylistResponse\x12<\n" +
	"\x04List\x12\x11.rockbox.v1.Empty\x1a!.rockbox.v1.ListPlaylistsResponse\x122\n" +
	"\x03Get\x12\x15.rockbox.v1.IdRequest\x1a\x14.rockbox.v1.Playlist\x12>\n" +
	"\x06Rename\x12!.rockbox.v1.RenamePlaylistRequest\x1a\x11.rockbox.v1.Empty\x122\n" +
	"\x06Delete\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty\x12J\n" +
	"\fInsertTracks\x12'.rockbox.v1.InsertPlaylistTracksRequest\x1a\x11.rockbox.v1.Empty\x12H\n" +
	"\vRemoveTrack\x12&.rockbox.v1.RemovePlaylistTrackRequest\x1a\x11.rockbox.v1.Empty\x12=\n" +
	"\n" +
	"GetCurrent\x12\x11.rockbox.v1.Empty\x1a\x1c.rockbox.v1.PlaylistSnapshot\x128\n" +
	"\aShuffle\x12\x1a.rockbox.v1.ShuffleRequest\x1a\x11.rockbox.v1.Empty\x12C\n" +
	"\x0eStreamPlaylist\x12\x11.rockbox.v1.Empty\x1a\x1c.rockbox.v1.PlaylistSnapshot0\x01\x12C\n" +
	"\fCreateFolder\x12\x1f.rockbox.v1.CreateFolderRequest\x1a\x12.rockbox.v1.Folder\x12A\n" +
	"\vListFolders\x12\x11.rockbox.v1.Empty\x1a\x1f.rockbox.v1.ListFoldersResponse\x128\n" +
	"\fDeleteFolder\x12\x15.rockbox.v1.IdRequest\x1a\x11.rockbox.v1.Empty2\xba\x01\n" +
	"\fSoundService\x122\n" +
	"\tGetVolume\x12\x11.rockbox.v1.Empty\x1a\x12.rockbox.v1.Volume\x122\n" +
	"\tSetVolume\x12\x12.rockbox.v1.Volume\x1a\x11.rockbox.v1.Empty\x12B\n" +
	"\fAdjustVolume\x12\x1f.rockbox.v1.AdjustVolumeRequest\x1a\x11.rockbox.v1.Empty2\x85\x01\n" +
	"\x0fSettingsService\x126\n" +
	"\vGetSettings\x12\x11.rockbox.v1.Empty\x1a\x14.rockbox.v1.Settings\x12:\n" +
	"\fSaveSettings\x12\x14.rockbox.v1.Settings\x1a\x14.rockbox.v1.Settings2\xaf\x01\n" +
	"\rBrowseService\x12T\n" +
	"\rListDirectory\x12 .rockbox.v1.ListDirectoryRequest\x1a!.rockbox.v1.ListDirectoryResponse\x12H\n" +
	"\aListAll\x12 .rockbox.v1.ListDirectoryRequest\x1a\x1b.rockbox.v1.ListAllResponse2\x7f\n" +
	"\rSystemService\x120\n" +
	"\bGetStats\x12\x11.rockbox.v1.Empty\x1a\x11.rockbox.v1.Stats\x12<\n" +
	"\aGetLogs\x12\x17.rockbox.v1.LogsRequest\x1a\x18.rockbox.v1.LogsResponse2\x82\x01\n" +
	"\rDeviceService\x122\n" +
	"\tGetDevice\x12\x11.rockbox.v1.Empty\x1a\x12.rockbox.v1.Device\x12=\n" +
	"\tListPeers\x12\x11.rockbox.v1.Empty\x1a\x1d.rockbox.v1.ListPeersResponseB:Z8github.com/tsirysndr/rockboxd/proto/rockbox/v1;rockboxv1b\x06proto3"

var (
	file_rockbox_v1_rockbox_proto_rawDescOnce sync.Once
	file_rockbox_v1_rockbox_proto_rawDescData []byte
)

func file_rockbox_v1_rockbox_proto_rawDescGZIP() []byte {
	file_rockbox_v1_rockbox_proto_rawDescOnce.Do(func() {
		file_rockbox_v1_rockbox_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_rockbox_v1_rockbox_proto_rawDesc), len(file_rockbox_v1_rockbox_proto_rawDesc)))
	})
	return file_rockbox_v1_rockbox_proto_rawDescData
}

var file_rockbox_v1_rockbox_proto_msgTypes = make([]protoimpl.MessageInfo, 47)
var file_rockbox_v1_rockbox_proto_goTypes = []any{
	(*Track)(nil),                       // 0: rockbox.v1.Track
	(*Album)(nil),                       // 1: rockbox.v1.Album
	(*Artist)(nil),                      // 2: rockbox.v1.Artist
	(*CurrentTrack)(nil),                // 3: rockbox.v1.CurrentTrack
	(*PlaybackStatus)(nil),              // 4: rockbox.v1.PlaybackStatus
	(*PlaylistSnapshot)(nil),            // 5: rockbox.v1.PlaylistSnapshot
	(*Empty)(nil),                       // 6: rockbox.v1.Empty
	(*GetAlbumsResponse)(nil),           // 7: rockbox.v1.GetAlbumsResponse
	(*GetArtistsResponse)(nil),          // 8: rockbox.v1.GetArtistsResponse
	(*GetTracksResponse)(nil),           // 9: rockbox.v1.GetTracksResponse
	(*IdRequest)(nil),                   // 10: rockbox.v1.IdRequest
	(*SearchRequest)(nil),               // 11: rockbox.v1.SearchRequest
	(*SearchResponse)(nil),              // 12: rockbox.v1.SearchResponse
	(*ScanRequest)(nil),                 // 13: rockbox.v1.ScanRequest
	(*ScanResponse)(nil),                // 14: rockbox.v1.ScanResponse
	(*PlayRequest)(nil),                 // 15: rockbox.v1.PlayRequest
	(*SeekRequest)(nil),                 // 16: rockbox.v1.SeekRequest
	(*PlaySelectionRequest)(nil),        // 17: rockbox.v1.PlaySelectionRequest
	(*PlayDirectoryRequest)(nil),        // 18: rockbox.v1.PlayDirectoryRequest
	(*PlayTrackRequest)(nil),            // 19: rockbox.v1.PlayTrackRequest
	(*GetFilePositionResponse)(nil),     // 20: rockbox.v1.GetFilePositionResponse
	(*CreatePlaylistRequest)(nil),       // 21: rockbox.v1.CreatePlaylistRequest
	(*CreatePlaylistResponse)(nil),      // 22: rockbox.v1.CreatePlaylistResponse
	(*Playlist)(nil),                    // 23: rockbox.v1.Playlist
	(*ListPlaylistsResponse)(nil),       // 24: rockbox.v1.ListPlaylistsResponse
	(*RenamePlaylistRequest)(nil),       // 25: rockbox.v1.RenamePlaylistRequest
	(*InsertPlaylistTracksRequest)(nil), // 26: rockbox.v1.InsertPlaylistTracksRequest
	(*RemovePlaylistTrackRequest)(nil),  // 27: rockbox.v1.RemovePlaylistTrackRequest
	(*ShuffleRequest)(nil),              // 28: rockbox.v1.ShuffleRequest
	(*CreateFolderRequest)(nil),         // 29: rockbox.v1.CreateFolderRequest
	(*Folder)(nil),                      // 30: rockbox.v1.Folder
	(*ListFoldersResponse)(nil),         // 31: rockbox.v1.ListFoldersResponse
	(*Volume)(nil),                      // 32: rockbox.v1.Volume
	(*AdjustVolumeRequest)(nil),         // 33: rockbox.v1.AdjustVolumeRequest
	(*EqBand)(nil),                      // 34: rockbox.v1.EqBand
	(*Settings)(nil),                    // 35: rockbox.v1.Settings
	(*ListDirectoryRequest)(nil),        // 36: rockbox.v1.ListDirectoryRequest
	(*DirectoryEntry)(nil),              // 37: rockbox.v1.DirectoryEntry
	(*ListDirectoryResponse)(nil),       // 38: rockbox.v1.ListDirectoryResponse
	(*ListAllResponse)(nil),             // 39: rockbox.v1.ListAllResponse
	(*Stats)(nil),                       // 40: rockbox.v1.Stats
	(*LogsRequest)(nil),                 // 41: rockbox.v1.LogsRequest
	(*LogEntry)(nil),                    // 42: rockbox.v1.LogEntry
	(*LogsResponse)(nil),                // 43: rockbox.v1.LogsResponse
	(*Device)(nil),                      // 44: rockbox.v1.Device
	(*Peer)(nil),                        // 45: rockbox.v1.Peer
	(*ListPeersResponse)(nil),           // 46: rockbox.v1.ListPeersResponse
}
var file_rockbox_v1_rockbox_proto_depIdxs = []int32{
	0,  // 0: rockbox.v1.Album.tracks:type_name -> rockbox.v1.Track
	0,  // 1: rockbox.v1.Artist.tracks:type_name -> rockbox.v1.Track
	1,  // 2: rockbox.v1.Artist.albums:type_name -> rockbox.v1.Album
	0,  // 3: rockbox.v1.CurrentTrack.track:type_name -> rockbox.v1.Track
	0,  // 4: rockbox.v1.PlaylistSnapshot.tracks:type_name -> rockbox.v1.Track
	1,  // 5: rockbox.v1.GetAlbumsResponse.albums:type_name -> rockbox.v1.Album
	2,  // 6: rockbox.v1.GetArtistsResponse.artists:type_name -> rockbox.v1.Artist
	0,  // 7: rockbox.v1.GetTracksResponse.tracks:type_name -> rockbox.v1.Track
	1,  // 8: rockbox.v1.SearchResponse.albums:type_name -> rockbox.v1.Album
	2,  // 9: rockbox.v1.SearchResponse.artists:type_name -> rockbox.v1.Artist
	0,  // 10: rockbox.v1.SearchResponse.tracks:type_name -> rockbox.v1.Track
	0,  // 11: rockbox.v1.Playlist.tracks:type_name -> rockbox.v1.Track
	23, // 12: rockbox.v1.ListPlaylistsResponse.playlists:type_name -> rockbox.v1.Playlist
	30, // 13: rockbox.v1.ListFoldersResponse.folders:type_name -> rockbox.v1.Folder
	34, // 14: rockbox.v1.Settings.eq_bands:type_name -> rockbox.v1.EqBand
	37, // 15: rockbox.v1.ListDirectoryResponse.entries:type_name -> rockbox.v1.DirectoryEntry
	42, // 16: rockbox.v1.LogsResponse.entries:type_name -> rockbox.v1.LogEntry
	45, // 17: rockbox.v1.ListPeersResponse.peers:type_name -> rockbox.v1.Peer
	6,  // 18: rockbox.v1.LibraryService.GetAlbums:input_type -> rockbox.v1.Empty
	6,  // 19: rockbox.v1.LibraryService.GetArtists:input_type -> rockbox.v1.Empty
	6,  // 20: rockbox.v1.LibraryService.GetTracks:input_type -> rockbox.v1.Empty
	10, // 21: rockbox.v1.LibraryService.GetAlbum:input_type -> rockbox.v1.IdRequest
	10, // 22: rockbox.v1.LibraryService.GetArtist:input_type -> rockbox.v1.IdRequest
	10, // 23: rockbox.v1.LibraryService.GetTrack:input_type -> rockbox.v1.IdRequest
	11, // 24: rockbox.v1.LibraryService.Search:input_type -> rockbox.v1.SearchRequest
	10, // 25: rockbox.v1.LibraryService.LikeTrack:input_type -> rockbox.v1.IdRequest
	10, // 26: rockbox.v1.LibraryService.UnlikeTrack:input_type -> rockbox.v1.IdRequest
	10, // 27: rockbox.v1.LibraryService.LikeAlbum:input_type -> rockbox.v1.IdRequest
	10, // 28: rockbox.v1.LibraryService.UnlikeAlbum:input_type -> rockbox.v1.IdRequest
	6,  // 29: rockbox.v1.LibraryService.GetLikedTracks:input_type -> rockbox.v1.Empty
	6,  // 30: rockbox.v1.LibraryService.GetLikedAlbums:input_type -> rockbox.v1.Empty
	13, // 31: rockbox.v1.LibraryService.Scan:input_type -> rockbox.v1.ScanRequest
	6,  // 32: rockbox.v1.LibraryService.FlushAndReloadTracks:input_type -> rockbox.v1.Empty
	15, // 33: rockbox.v1.PlaybackService.Play:input_type -> rockbox.v1.PlayRequest
	6,  // 34: rockbox.v1.PlaybackService.Pause:input_type -> rockbox.v1.Empty
	6,  // 35: rockbox.v1.PlaybackService.Resume:input_type -> rockbox.v1.Empty
	6,  // 36: rockbox.v1.PlaybackService.Stop:input_type -> rockbox.v1.Empty
	6,  // 37: rockbox.v1.PlaybackService.HardStop:input_type -> rockbox.v1.Empty
	6,  // 38: rockbox.v1.PlaybackService.Next:input_type -> rockbox.v1.Empty
	6,  // 39: rockbox.v1.PlaybackService.Previous:input_type -> rockbox.v1.Empty
	16, // 40: rockbox.v1.PlaybackService.Seek:input_type -> rockbox.v1.SeekRequest
	6,  // 41: rockbox.v1.PlaybackService.GetStatus:input_type -> rockbox.v1.Empty
	6,  // 42: rockbox.v1.PlaybackService.GetCurrentTrack:input_type -> rockbox.v1.Empty
	6,  // 43: rockbox.v1.PlaybackService.GetNextTrack:input_type -> rockbox.v1.Empty
	6,  // 44: rockbox.v1.PlaybackService.GetFilePosition:input_type -> rockbox.v1.Empty
	17, // 45: rockbox.v1.PlaybackService.PlayAlbum:input_type -> rockbox.v1.PlaySelectionRequest
	17, // 46: rockbox.v1.PlaybackService.PlayArtistTracks:input_type -> rockbox.v1.PlaySelectionRequest
	18, // 47: rockbox.v1.PlaybackService.PlayDirectory:input_type -> rockbox.v1.PlayDirectoryRequest
	19, // 48: rockbox.v1.PlaybackService.PlayTrack:input_type -> rockbox.v1.PlayTrackRequest
	17, // 49: rockbox.v1.PlaybackService.PlayLikedTracks:input_type -> rockbox.v1.PlaySelectionRequest
	17, // 50: rockbox.v1.PlaybackService.PlayAllTracks:input_type -> rockbox.v1.PlaySelectionRequest
	6,  // 51: rockbox.v1.PlaybackService.StreamCurrentTrack:input_type -> rockbox.v1.Empty
	6,  // 52: rockbox.v1.PlaybackService.StreamStatus:input_type -> rockbox.v1.Empty
	21, // 53: rockbox.v1.PlaylistService.Create:input_type -> rockbox.v1.CreatePlaylistRequest
	6,  // 54: rockbox.v1.PlaylistService.List:input_type -> rockbox.v1.Empty
	10, // 55: rockbox.v1.PlaylistService.Get:input_type -> rockbox.v1.IdRequest
	25, // 56: rockbox.v1.PlaylistService.Rename:input_type -> rockbox.v1.RenamePlaylistRequest
	10, // 57: rockbox.v1.PlaylistService.Delete:input_type -> rockbox.v1.IdRequest
	26, // 58: rockbox.v1.PlaylistService.InsertTracks:input_type -> rockbox.v1.InsertPlaylistTracksRequest
	27, // 59: rockbox.v1.PlaylistService.RemoveTrack:input_type -> rockbox.v1.RemovePlaylistTrackRequest
	6,  // 60: rockbox.v1.PlaylistService.GetCurrent:input_type -> rockbox.v1.Empty
	28, // 61: rockbox.v1.PlaylistService.Shuffle:input_type -> rockbox.v1.ShuffleRequest
	6,  // 62: rockbox.v1.PlaylistService.StreamPlaylist:input_type -> rockbox.v1.Empty
	29, // 63: rockbox.v1.PlaylistService.CreateFolder:input_type -> rockbox.v1.CreateFolderRequest
	6,  // 64: rockbox.v1.PlaylistService.ListFolders:input_type -> rockbox.v1.Empty
	10, // 65: rockbox.v1.PlaylistService.DeleteFolder:input_type -> rockbox.v1.IdRequest
	6,  // 66: rockbox.v1.SoundService.GetVolume:input_type -> rockbox.v1.Empty
	32, // 67: rockbox.v1.SoundService.SetVolume:input_type -> rockbox.v1.Volume
	33, // 68: rockbox.v1.SoundService.AdjustVolume:input_type -> rockbox.v1.AdjustVolumeRequest
	6,  // 69: rockbox.v1.SettingsService.GetSettings:input_type -> rockbox.v1.Empty
	35, // 70: rockbox.v1.SettingsService.SaveSettings:input_type -> rockbox.v1.Settings
	36, // 71: rockbox.v1.BrowseService.ListDirectory:input_type -> rockbox.v1.ListDirectoryRequest
	36, // 72: rockbox.v1.BrowseService.ListAll:input_type -> rockbox.v1.ListDirectoryRequest
	6,  // 73: rockbox.v1.SystemService.GetStats:input_type -> rockbox.v1.Empty
	41, // 74: rockbox.v1.SystemService.GetLogs:input_type -> rockbox.v1.LogsRequest
	6,  // 75: rockbox.v1.DeviceService.GetDevice:input_type -> rockbox.v1.Empty
	6,  // 76: rockbox.v1.DeviceService.ListPeers:input_type -> rockbox.v1.Empty
	7,  // 77: rockbox.v1.LibraryService.GetAlbums:output_type -> rockbox.v1.GetAlbumsResponse
	8,  // 78: rockbox.v1.LibraryService.GetArtists:output_type -> rockbox.v1.GetArtistsResponse
	9,  // 79: rockbox.v1.LibraryService.GetTracks:output_type -> rockbox.v1.GetTracksResponse
	1,  // 80: rockbox.v1.LibraryService.GetAlbum:output_type -> rockbox.v1.Album
	2,  // 81: rockbox.v1.LibraryService.GetArtist:output_type -> rockbox.v1.Artist
	0,  // 82: rockbox.v1.LibraryService.GetTrack:output_type -> rockbox.v1.Track
	12, // 83: rockbox.v1.LibraryService.Search:output_type -> rockbox.v1.SearchResponse
	6,  // 84: rockbox.v1.LibraryService.LikeTrack:output_type -> rockbox.v1.Empty
	6,  // 85: rockbox.v1.LibraryService.UnlikeTrack:output_type -> rockbox.v1.Empty
	6,  // 86: rockbox.v1.LibraryService.LikeAlbum:output_type -> rockbox.v1.Empty
	6,  // 87: rockbox.v1.LibraryService.UnlikeAlbum:output_type -> rockbox.v1.Empty
	9,  // 88: rockbox.v1.LibraryService.GetLikedTracks:output_type -> rockbox.v1.GetTracksResponse
	7,  // 89: rockbox.v1.LibraryService.GetLikedAlbums:output_type -> rockbox.v1.GetAlbumsResponse
	14, // 90: rockbox.v1.LibraryService.Scan:output_type -> rockbox.v1.ScanResponse
	6,  // 91: rockbox.v1.LibraryService.FlushAndReloadTracks:output_type -> rockbox.v1.Empty
	6,  // 92: rockbox.v1.PlaybackService.Play:output_type -> rockbox.v1.Empty
	6,  // 93: rockbox.v1.PlaybackService.Pause:output_type -> rockbox.v1.Empty
	6,  // 94: rockbox.v1.PlaybackService.Resume:output_type -> rockbox.v1.Empty
	6,  // 95: rockbox.v1.PlaybackService.Stop:output_type -> rockbox.v1.Empty
	6,  // 96: rockbox.v1.PlaybackService.HardStop:output_type -> rockbox.v1.Empty
	6,  // 97: rockbox.v1.PlaybackService.Next:output_type -> rockbox.v1.Empty
	6,  // 98: rockbox.v1.PlaybackService.Previous:output_type -> rockbox.v1.Empty
	6,  // 99: rockbox.v1.PlaybackService.Seek:output_type -> rockbox.v1.Empty
	4,  // 100: rockbox.v1.PlaybackService.GetStatus:output_type -> rockbox.v1.PlaybackStatus
	3,  // 101: rockbox.v1.PlaybackService.GetCurrentTrack:output_type -> rockbox.v1.CurrentTrack
	3,  // 102: rockbox.v1.PlaybackService.GetNextTrack:output_type -> rockbox.v1.CurrentTrack
	20, // 103: rockbox.v1.PlaybackService.GetFilePosition:output_type -> rockbox.v1.GetFilePositionResponse
	6,  // 104: rockbox.v1.PlaybackService.PlayAlbum:output_type -> rockbox.v1.Empty
	6,  // 105: rockbox.v1.PlaybackService.PlayArtistTracks:output_type -> rockbox.v1.Empty
	6,  // 106: rockbox.v1.PlaybackService.PlayDirectory:output_type -> rockbox.v1.Empty
	6,  // 107: rockbox.v1.PlaybackService.PlayTrack:output_type -> rockbox.v1.Empty
	6,  // 108: rockbox.v1.PlaybackService.PlayLikedTracks:output_type -> rockbox.v1.Empty
	6,  // 109: rockbox.v1.PlaybackService.PlayAllTracks:output_type -> rockbox.v1.Empty
	3,  // 110: rockbox.v1.PlaybackService.StreamCurrentTrack:output_type -> rockbox.v1.CurrentTrack
	4,  // 111: rockbox.v1.PlaybackService.StreamStatus:output_type -> rockbox.v1.PlaybackStatus
	22, // 112: rockbox.v1.PlaylistService.Create:output_type -> rockbox.v1.CreatePlaylistResponse
	24, // 113: rockbox.v1.PlaylistService.List:output_type -> rockbox.v1.ListPlaylistsResponse
	23, // 114: rockbox.v1.PlaylistService.Get:output_type -> rockbox.v1.Playlist
	6,  // 115: rockbox.v1.PlaylistService.Rename:output_type -> rockbox.v1.Empty
	6,  // 116: rockbox.v1.PlaylistService.Delete:output_type -> rockbox.v1.Empty
	6,  // 117: rockbox.v1.PlaylistService.InsertTracks:output_type -> rockbox.v1.Empty
	6,  // 118: rockbox.v1.PlaylistService.RemoveTrack:output_type -> rockbox.v1.Empty
	5,  // 119: rockbox.v1.PlaylistService.GetCurrent:output_type -> rockbox.v1.PlaylistSnapshot
	6,  // 120: rockbox.v1.PlaylistService.Shuffle:output_type -> rockbox.v1.Empty
	5,  // 121: rockbox.v1.PlaylistService.StreamPlaylist:output_type -> rockbox.v1.PlaylistSnapshot
	30, // 122: rockbox.v1.PlaylistService.CreateFolder:output_type -> rockbox.v1.Folder
	31, // 123: rockbox.v1.PlaylistService.ListFolders:output_type -> rockbox.v1.ListFoldersResponse
	6,  // 124: rockbox.v1.PlaylistService.DeleteFolder:output_type -> rockbox.v1.Empty
	32, // 125: rockbox.v1.SoundService.GetVolume:output_type -> rockbox.v1.Volume
	6,  // 126: rockbox.v1.SoundService.SetVolume:output_type -> rockbox.v1.Empty
	6,  // 127: rockbox.v1.SoundService.AdjustVolume:output_type -> rockbox.v1.Empty
	35, // 128: rockbox.v1.SettingsService.GetSettings:output_type -> rockbox.v1.Settings
	35, // 129: rockbox.v1.SettingsService.SaveSettings:output_type -> rockbox.v1.Settings
	38, // 130: rockbox.v1.BrowseService.ListDirectory:output_type -> rockbox.v1.ListDirectoryResponse
	39, // 131: rockbox.v1.BrowseService.ListAll:output_type -> rockbox.v1.ListAllResponse
	40, // 132: rockbox.v1.SystemService.GetStats:output_type -> rockbox.v1.Stats
	43, // 133: rockbox.v1.SystemService.GetLogs:output_type -> rockbox.v1.LogsResponse
	44, // 134: rockbox.v1.DeviceService.GetDevice:output_type -> rockbox.v1.Device
	46, // 135: rockbox.v1.DeviceService.ListPeers:output_type -> rockbox.v1.ListPeersResponse
	77, // [77:136] is the sub-list for method output_type
	18, // [18:77] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_rockbox_v1_rockbox_proto_init() }
func file_rockbox_v1_rockbox_proto_init() {
	if File_rockbox_v1_rockbox_proto != nil {
		return
	}
	file_rockbox_v1_rockbox_proto_msgTypes[17].OneofWrappers = []any{}
	file_rockbox_v1_rockbox_proto_msgTypes[18].OneofWrappers = []any{}
	file_rockbox_v1_rockbox_proto_msgTypes[21].OneofWrappers = []any{}
	file_rockbox_v1_rockbox_proto_msgTypes[23].OneofWrappers = []any{}
	file_rockbox_v1_rockbox_proto_msgTypes[29].OneofWrappers = []any{}
	file_rockbox_v1_rockbox_proto_msgTypes[30].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_rockbox_v1_rockbox_proto_rawDesc), len(file_rockbox_v1_rockbox_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   47,
			NumExtensions: 0,
			NumServices:   8,
		},
		GoTypes:           file_rockbox_v1_rockbox_proto_goTypes,
		DependencyIndexes: file_rockbox_v1_rockbox_proto_depIdxs,
		MessageInfos:      file_rockbox_v1_rockbox_proto_msgTypes,
	}.Build()
	File_rockbox_v1_rockbox_proto = out.File
	file_rockbox_v1_rockbox_proto_goTypes = nil
	file_rockbox_v1_rockbox_proto_depIdxs = nil
}
