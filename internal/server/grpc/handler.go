package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) caller(ctx context.Context) (string, error) {
	id, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	s.logger.Info(ctx, "Registration request")

	u, err := s.users.Register(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodRegister, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{UserID: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, u, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodLogin, err)
	}
	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Profile:      profileToPB(u),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodRefreshToken, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, userID, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, pb.MethodLogout, err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetProfile, err)
	}
	return &pb.GetProfileResponse{Profile: profileToPB(u)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.UpdateProfile(ctx, userID, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodUpdateProfile, err)
	}
	return &pb.UpdateProfileResponse{Profile: profileToPB(u)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, pb.MethodChangePassword, err)
	}
	s.logger.Info(ctx, "Password changed", "user_id", userID)
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) GetAvatarUploadURL(ctx context.Context, req *pb.GetAvatarUploadURLRequest) (*pb.GetAvatarUploadURLResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	key, url, err := s.users.AvatarUploadURL(ctx, userID, req.ContentType)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetAvatarUploadURL, err)
	}
	return &pb.GetAvatarUploadURLResponse{Key: key, URL: url}, nil
}

func (s *GRPCServer) GetAvatarURL(ctx context.Context, _ *pb.GetAvatarURLRequest) (*pb.GetAvatarURLResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.users.AvatarURL(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetAvatarURL, err)
	}
	return &pb.GetAvatarURLResponse{URL: url}, nil
}
