package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "recipeplanner.v1.RecipePlannerService"

// Full method names, as seen by interceptors.
const (
	MethodRegister             = "/" + ServiceName + "/Register"
	MethodLogin                = "/" + ServiceName + "/Login"
	MethodRefreshToken         = "/" + ServiceName + "/RefreshToken"
	MethodLogout               = "/" + ServiceName + "/Logout"
	MethodGetProfile           = "/" + ServiceName + "/GetProfile"
	MethodUpdateProfile        = "/" + ServiceName + "/UpdateProfile"
	MethodChangePassword       = "/" + ServiceName + "/ChangePassword"
	MethodGetAvatarUploadURL   = "/" + ServiceName + "/GetAvatarUploadURL"
	MethodGetAvatarURL         = "/" + ServiceName + "/GetAvatarURL"
	MethodAddFavorite          = "/" + ServiceName + "/AddFavorite"
	MethodRemoveFavorite       = "/" + ServiceName + "/RemoveFavorite"
	MethodListFavorites        = "/" + ServiceName + "/ListFavorites"
	MethodAddComment           = "/" + ServiceName + "/AddComment"
	MethodDeleteComment        = "/" + ServiceName + "/DeleteComment"
	MethodListComments         = "/" + ServiceName + "/ListComments"
	MethodSetRating            = "/" + ServiceName + "/SetRating"
	MethodListRatings          = "/" + ServiceName + "/ListRatings"
	MethodGetAverageRating     = "/" + ServiceName + "/GetAverageRating"
	MethodAddMealPlan          = "/" + ServiceName + "/AddMealPlan"
	MethodListMealPlans        = "/" + ServiceName + "/ListMealPlans"
	MethodDeleteMealPlan       = "/" + ServiceName + "/DeleteMealPlan"
	MethodRecordRecentlyViewed = "/" + ServiceName + "/RecordRecentlyViewed"
	MethodListRecentlyViewed   = "/" + ServiceName + "/ListRecentlyViewed"
	MethodWatchComments        = "/" + ServiceName + "/WatchComments"
)

// RecipePlannerServiceClient is the client API of the RecipePlanner service.
type RecipePlannerServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error)
	ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error)
	GetAvatarUploadURL(ctx context.Context, in *GetAvatarUploadURLRequest, opts ...grpc.CallOption) (*GetAvatarUploadURLResponse, error)
	GetAvatarURL(ctx context.Context, in *GetAvatarURLRequest, opts ...grpc.CallOption) (*GetAvatarURLResponse, error)
	AddFavorite(ctx context.Context, in *AddFavoriteRequest, opts ...grpc.CallOption) (*AddFavoriteResponse, error)
	RemoveFavorite(ctx context.Context, in *RemoveFavoriteRequest, opts ...grpc.CallOption) (*RemoveFavoriteResponse, error)
	ListFavorites(ctx context.Context, in *ListFavoritesRequest, opts ...grpc.CallOption) (*ListFavoritesResponse, error)
	AddComment(ctx context.Context, in *AddCommentRequest, opts ...grpc.CallOption) (*AddCommentResponse, error)
	DeleteComment(ctx context.Context, in *DeleteCommentRequest, opts ...grpc.CallOption) (*DeleteCommentResponse, error)
	ListComments(ctx context.Context, in *ListCommentsRequest, opts ...grpc.CallOption) (*ListCommentsResponse, error)
	SetRating(ctx context.Context, in *SetRatingRequest, opts ...grpc.CallOption) (*SetRatingResponse, error)
	ListRatings(ctx context.Context, in *ListRatingsRequest, opts ...grpc.CallOption) (*ListRatingsResponse, error)
	GetAverageRating(ctx context.Context, in *GetAverageRatingRequest, opts ...grpc.CallOption) (*GetAverageRatingResponse, error)
	AddMealPlan(ctx context.Context, in *AddMealPlanRequest, opts ...grpc.CallOption) (*AddMealPlanResponse, error)
	ListMealPlans(ctx context.Context, in *ListMealPlansRequest, opts ...grpc.CallOption) (*ListMealPlansResponse, error)
	DeleteMealPlan(ctx context.Context, in *DeleteMealPlanRequest, opts ...grpc.CallOption) (*DeleteMealPlanResponse, error)
	RecordRecentlyViewed(ctx context.Context, in *RecordRecentlyViewedRequest, opts ...grpc.CallOption) (*RecordRecentlyViewedResponse, error)
	ListRecentlyViewed(ctx context.Context, in *ListRecentlyViewedRequest, opts ...grpc.CallOption) (*ListRecentlyViewedResponse, error)
	WatchComments(ctx context.Context, in *WatchCommentsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CommentsSnapshot], error)
}

type recipePlannerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecipePlannerServiceClient returns a client bound to cc. Every call is
// sent with the JSON content-subtype.
func NewRecipePlannerServiceClient(cc grpc.ClientConnInterface) RecipePlannerServiceClient {
	return &recipePlannerServiceClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Res any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Res, error) {
	out := new(Res)
	if err := cc.Invoke(ctx, method, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipePlannerServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *recipePlannerServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *recipePlannerServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *recipePlannerServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, MethodLogout, in, opts)
}

func (c *recipePlannerServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	return invoke[GetProfileResponse](ctx, c.cc, MethodGetProfile, in, opts)
}

func (c *recipePlannerServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*UpdateProfileResponse, error) {
	return invoke[UpdateProfileResponse](ctx, c.cc, MethodUpdateProfile, in, opts)
}

func (c *recipePlannerServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error) {
	return invoke[ChangePasswordResponse](ctx, c.cc, MethodChangePassword, in, opts)
}

func (c *recipePlannerServiceClient) GetAvatarUploadURL(ctx context.Context, in *GetAvatarUploadURLRequest, opts ...grpc.CallOption) (*GetAvatarUploadURLResponse, error) {
	return invoke[GetAvatarUploadURLResponse](ctx, c.cc, MethodGetAvatarUploadURL, in, opts)
}

func (c *recipePlannerServiceClient) GetAvatarURL(ctx context.Context, in *GetAvatarURLRequest, opts ...grpc.CallOption) (*GetAvatarURLResponse, error) {
	return invoke[GetAvatarURLResponse](ctx, c.cc, MethodGetAvatarURL, in, opts)
}

func (c *recipePlannerServiceClient) AddFavorite(ctx context.Context, in *AddFavoriteRequest, opts ...grpc.CallOption) (*AddFavoriteResponse, error) {
	return invoke[AddFavoriteResponse](ctx, c.cc, MethodAddFavorite, in, opts)
}

func (c *recipePlannerServiceClient) RemoveFavorite(ctx context.Context, in *RemoveFavoriteRequest, opts ...grpc.CallOption) (*RemoveFavoriteResponse, error) {
	return invoke[RemoveFavoriteResponse](ctx, c.cc, MethodRemoveFavorite, in, opts)
}

func (c *recipePlannerServiceClient) ListFavorites(ctx context.Context, in *ListFavoritesRequest, opts ...grpc.CallOption) (*ListFavoritesResponse, error) {
	return invoke[ListFavoritesResponse](ctx, c.cc, MethodListFavorites, in, opts)
}

func (c *recipePlannerServiceClient) AddComment(ctx context.Context, in *AddCommentRequest, opts ...grpc.CallOption) (*AddCommentResponse, error) {
	return invoke[AddCommentResponse](ctx, c.cc, MethodAddComment, in, opts)
}

func (c *recipePlannerServiceClient) DeleteComment(ctx context.Context, in *DeleteCommentRequest, opts ...grpc.CallOption) (*DeleteCommentResponse, error) {
	return invoke[DeleteCommentResponse](ctx, c.cc, MethodDeleteComment, in, opts)
}

func (c *recipePlannerServiceClient) ListComments(ctx context.Context, in *ListCommentsRequest, opts ...grpc.CallOption) (*ListCommentsResponse, error) {
	return invoke[ListCommentsResponse](ctx, c.cc, MethodListComments, in, opts)
}

func (c *recipePlannerServiceClient) SetRating(ctx context.Context, in *SetRatingRequest, opts ...grpc.CallOption) (*SetRatingResponse, error) {
	return invoke[SetRatingResponse](ctx, c.cc, MethodSetRating, in, opts)
}

func (c *recipePlannerServiceClient) ListRatings(ctx context.Context, in *ListRatingsRequest, opts ...grpc.CallOption) (*ListRatingsResponse, error) {
	return invoke[ListRatingsResponse](ctx, c.cc, MethodListRatings, in, opts)
}

func (c *recipePlannerServiceClient) GetAverageRating(ctx context.Context, in *GetAverageRatingRequest, opts ...grpc.CallOption) (*GetAverageRatingResponse, error) {
	return invoke[GetAverageRatingResponse](ctx, c.cc, MethodGetAverageRating, in, opts)
}

func (c *recipePlannerServiceClient) AddMealPlan(ctx context.Context, in *AddMealPlanRequest, opts ...grpc.CallOption) (*AddMealPlanResponse, error) {
	return invoke[AddMealPlanResponse](ctx, c.cc, MethodAddMealPlan, in, opts)
}

func (c *recipePlannerServiceClient) ListMealPlans(ctx context.Context, in *ListMealPlansRequest, opts ...grpc.CallOption) (*ListMealPlansResponse, error) {
	return invoke[ListMealPlansResponse](ctx, c.cc, MethodListMealPlans, in, opts)
}

func (c *recipePlannerServiceClient) DeleteMealPlan(ctx context.Context, in *DeleteMealPlanRequest, opts ...grpc.CallOption) (*DeleteMealPlanResponse, error) {
	return invoke[DeleteMealPlanResponse](ctx, c.cc, MethodDeleteMealPlan, in, opts)
}

func (c *recipePlannerServiceClient) RecordRecentlyViewed(ctx context.Context, in *RecordRecentlyViewedRequest, opts ...grpc.CallOption) (*RecordRecentlyViewedResponse, error) {
	return invoke[RecordRecentlyViewedResponse](ctx, c.cc, MethodRecordRecentlyViewed, in, opts)
}

func (c *recipePlannerServiceClient) ListRecentlyViewed(ctx context.Context, in *ListRecentlyViewedRequest, opts ...grpc.CallOption) (*ListRecentlyViewedResponse, error) {
	return invoke[ListRecentlyViewedResponse](ctx, c.cc, MethodListRecentlyViewed, in, opts)
}

func (c *recipePlannerServiceClient) WatchComments(ctx context.Context, in *WatchCommentsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[CommentsSnapshot], error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], MethodWatchComments, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchCommentsRequest, CommentsSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// RecipePlannerServiceServer is the server API of the RecipePlanner service.
type RecipePlannerServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
	GetAvatarUploadURL(context.Context, *GetAvatarUploadURLRequest) (*GetAvatarUploadURLResponse, error)
	GetAvatarURL(context.Context, *GetAvatarURLRequest) (*GetAvatarURLResponse, error)
	AddFavorite(context.Context, *AddFavoriteRequest) (*AddFavoriteResponse, error)
	RemoveFavorite(context.Context, *RemoveFavoriteRequest) (*RemoveFavoriteResponse, error)
	ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesResponse, error)
	AddComment(context.Context, *AddCommentRequest) (*AddCommentResponse, error)
	DeleteComment(context.Context, *DeleteCommentRequest) (*DeleteCommentResponse, error)
	ListComments(context.Context, *ListCommentsRequest) (*ListCommentsResponse, error)
	SetRating(context.Context, *SetRatingRequest) (*SetRatingResponse, error)
	ListRatings(context.Context, *ListRatingsRequest) (*ListRatingsResponse, error)
	GetAverageRating(context.Context, *GetAverageRatingRequest) (*GetAverageRatingResponse, error)
	AddMealPlan(context.Context, *AddMealPlanRequest) (*AddMealPlanResponse, error)
	ListMealPlans(context.Context, *ListMealPlansRequest) (*ListMealPlansResponse, error)
	DeleteMealPlan(context.Context, *DeleteMealPlanRequest) (*DeleteMealPlanResponse, error)
	RecordRecentlyViewed(context.Context, *RecordRecentlyViewedRequest) (*RecordRecentlyViewedResponse, error)
	ListRecentlyViewed(context.Context, *ListRecentlyViewedRequest) (*ListRecentlyViewedResponse, error)
	WatchComments(*WatchCommentsRequest, grpc.ServerStreamingServer[CommentsSnapshot]) error
}

// UnimplementedRecipePlannerServiceServer can be embedded to satisfy
// RecipePlannerServiceServer; every method returns codes.Unimplemented.
type UnimplementedRecipePlannerServiceServer struct{}

func (UnimplementedRecipePlannerServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedRecipePlannerServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedRecipePlannerServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}

func (UnimplementedRecipePlannerServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}

func (UnimplementedRecipePlannerServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}

func (UnimplementedRecipePlannerServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProfile not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePassword not implemented")
}

func (UnimplementedRecipePlannerServiceServer) GetAvatarUploadURL(context.Context, *GetAvatarUploadURLRequest) (*GetAvatarUploadURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvatarUploadURL not implemented")
}

func (UnimplementedRecipePlannerServiceServer) GetAvatarURL(context.Context, *GetAvatarURLRequest) (*GetAvatarURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAvatarURL not implemented")
}

func (UnimplementedRecipePlannerServiceServer) AddFavorite(context.Context, *AddFavoriteRequest) (*AddFavoriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddFavorite not implemented")
}

func (UnimplementedRecipePlannerServiceServer) RemoveFavorite(context.Context, *RemoveFavoriteRequest) (*RemoveFavoriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFavorite not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFavorites not implemented")
}

func (UnimplementedRecipePlannerServiceServer) AddComment(context.Context, *AddCommentRequest) (*AddCommentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddComment not implemented")
}

func (UnimplementedRecipePlannerServiceServer) DeleteComment(context.Context, *DeleteCommentRequest) (*DeleteCommentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteComment not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ListComments(context.Context, *ListCommentsRequest) (*ListCommentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListComments not implemented")
}

func (UnimplementedRecipePlannerServiceServer) SetRating(context.Context, *SetRatingRequest) (*SetRatingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetRating not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ListRatings(context.Context, *ListRatingsRequest) (*ListRatingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRatings not implemented")
}

func (UnimplementedRecipePlannerServiceServer) GetAverageRating(context.Context, *GetAverageRatingRequest) (*GetAverageRatingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAverageRating not implemented")
}

func (UnimplementedRecipePlannerServiceServer) AddMealPlan(context.Context, *AddMealPlanRequest) (*AddMealPlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddMealPlan not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ListMealPlans(context.Context, *ListMealPlansRequest) (*ListMealPlansResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMealPlans not implemented")
}

func (UnimplementedRecipePlannerServiceServer) DeleteMealPlan(context.Context, *DeleteMealPlanRequest) (*DeleteMealPlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMealPlan not implemented")
}

func (UnimplementedRecipePlannerServiceServer) RecordRecentlyViewed(context.Context, *RecordRecentlyViewedRequest) (*RecordRecentlyViewedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordRecentlyViewed not implemented")
}

func (UnimplementedRecipePlannerServiceServer) ListRecentlyViewed(context.Context, *ListRecentlyViewedRequest) (*ListRecentlyViewedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRecentlyViewed not implemented")
}

func (UnimplementedRecipePlannerServiceServer) WatchComments(*WatchCommentsRequest, grpc.ServerStreamingServer[CommentsSnapshot]) error {
	return status.Error(codes.Unimplemented, "method WatchComments not implemented")
}

// RegisterRecipePlannerServiceServer registers srv on s.
func RegisterRecipePlannerServiceServer(s grpc.ServiceRegistrar, srv RecipePlannerServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler[Req, Res any](method string, call func(RecipePlannerServiceServer, context.Context, *Req) (*Res, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(RecipePlannerServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchCommentsHandler(srv any, stream grpc.ServerStream) error {
	in := new(WatchCommentsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(RecipePlannerServiceServer).WatchComments(in, &grpc.GenericServerStream[WatchCommentsRequest, CommentsSnapshot]{ServerStream: stream})
}

// ServiceDesc describes the RecipePlanner service for grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecipePlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unaryHandler(MethodRegister, RecipePlannerServiceServer.Register)},
		{MethodName: "Login", Handler: unaryHandler(MethodLogin, RecipePlannerServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unaryHandler(MethodRefreshToken, RecipePlannerServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unaryHandler(MethodLogout, RecipePlannerServiceServer.Logout)},
		{MethodName: "GetProfile", Handler: unaryHandler(MethodGetProfile, RecipePlannerServiceServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unaryHandler(MethodUpdateProfile, RecipePlannerServiceServer.UpdateProfile)},
		{MethodName: "ChangePassword", Handler: unaryHandler(MethodChangePassword, RecipePlannerServiceServer.ChangePassword)},
		{MethodName: "GetAvatarUploadURL", Handler: unaryHandler(MethodGetAvatarUploadURL, RecipePlannerServiceServer.GetAvatarUploadURL)},
		{MethodName: "GetAvatarURL", Handler: unaryHandler(MethodGetAvatarURL, RecipePlannerServiceServer.GetAvatarURL)},
		{MethodName: "AddFavorite", Handler: unaryHandler(MethodAddFavorite, RecipePlannerServiceServer.AddFavorite)},
		{MethodName: "RemoveFavorite", Handler: unaryHandler(MethodRemoveFavorite, RecipePlannerServiceServer.RemoveFavorite)},
		{MethodName: "ListFavorites", Handler: unaryHandler(MethodListFavorites, RecipePlannerServiceServer.ListFavorites)},
		{MethodName: "AddComment", Handler: unaryHandler(MethodAddComment, RecipePlannerServiceServer.AddComment)},
		{MethodName: "DeleteComment", Handler: unaryHandler(MethodDeleteComment, RecipePlannerServiceServer.DeleteComment)},
		{MethodName: "ListComments", Handler: unaryHandler(MethodListComments, RecipePlannerServiceServer.ListComments)},
		{MethodName: "SetRating", Handler: unaryHandler(MethodSetRating, RecipePlannerServiceServer.SetRating)},
		{MethodName: "ListRatings", Handler: unaryHandler(MethodListRatings, RecipePlannerServiceServer.ListRatings)},
		{MethodName: "GetAverageRating", Handler: unaryHandler(MethodGetAverageRating, RecipePlannerServiceServer.GetAverageRating)},
		{MethodName: "AddMealPlan", Handler: unaryHandler(MethodAddMealPlan, RecipePlannerServiceServer.AddMealPlan)},
		{MethodName: "ListMealPlans", Handler: unaryHandler(MethodListMealPlans, RecipePlannerServiceServer.ListMealPlans)},
		{MethodName: "DeleteMealPlan", Handler: unaryHandler(MethodDeleteMealPlan, RecipePlannerServiceServer.DeleteMealPlan)},
		{MethodName: "RecordRecentlyViewed", Handler: unaryHandler(MethodRecordRecentlyViewed, RecipePlannerServiceServer.RecordRecentlyViewed)},
		{MethodName: "ListRecentlyViewed", Handler: unaryHandler(MethodListRecentlyViewed, RecipePlannerServiceServer.ListRecentlyViewed)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchComments",
			Handler:       watchCommentsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "recipeplanner.v1",
}
